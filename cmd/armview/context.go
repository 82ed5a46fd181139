package main

import (
	"strings"
	"sync"

	"github.com/five82/armview/internal/app"
	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/config"
)

type commandContext struct {
	configFlag *string
	prefsFlag  *string
	pollFlag   *int

	configOnce sync.Once
	config     config.Config
	configErr  error
}

func newCommandContext(configFlag, prefsFlag *string, pollFlag *int) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		prefsFlag:  prefsFlag,
		pollFlag:   pollFlag,
	}
}

func (c *commandContext) options() app.Options {
	var opts app.Options
	if c.configFlag != nil {
		opts.ConfigPath = strings.TrimSpace(*c.configFlag)
	}
	if c.prefsFlag != nil {
		opts.PrefsPath = strings.TrimSpace(*c.prefsFlag)
	}
	if c.pollFlag != nil {
		opts.PollEvery = *c.pollFlag
	}
	return opts
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = app.LoadConfig(c.options())
	})
	return c.config, c.configErr
}

func (c *commandContext) client() (*arm.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return app.NewClient(cfg)
}
