// Package config loads armview's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/armview/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	arm_url = "http://arm.local:8090"
//	poll_seconds = 5
//	request_timeout_seconds = 5
//	log_file = "~/.local/share/armview/armview.log"
//	log_level = "info"
//
// Every field is optional. A bare host:port in arm_url gets an http://
// scheme and log_file has its tilde expanded.
//
// # Validation
//
// The merged result is checked with go-playground/validator: arm_url must be
// a URL, poll_seconds must be 1..3600, request_timeout_seconds 1..300 and
// log_level one of debug, info, warn or error. A failing field is reported
// as "invalid config: PollSeconds (max)".
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and validation failures. A missing file
// is not an error.
package config
