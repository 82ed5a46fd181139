package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/five82/armview/internal/arm"
)

// Overview is a one-shot read of the feeds the status command prints.
type Overview struct {
	Dashboard     arm.DashboardData  `json:"dashboard"`
	Drives        []arm.Drive        `json:"drives"`
	Notifications []arm.Notification `json:"notifications"`
}

// FetchOverview reads the dashboard, drives and notifications concurrently.
// The first failure cancels the remaining requests.
func FetchOverview(ctx context.Context, client arm.Fetcher) (Overview, error) {
	if client == nil {
		return Overview{}, fmt.Errorf("client is nil")
	}

	var ov Overview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := client.FetchDashboard(ctx)
		if err != nil {
			return fmt.Errorf("fetch dashboard: %w", err)
		}
		ov.Dashboard = d
		return nil
	})
	g.Go(func() error {
		drives, err := client.FetchDrives(ctx)
		if err != nil {
			return fmt.Errorf("fetch drives: %w", err)
		}
		ov.Drives = drives
		return nil
	})
	g.Go(func() error {
		notes, err := client.FetchNotifications(ctx)
		if err != nil {
			return fmt.Errorf("fetch notifications: %w", err)
		}
		ov.Notifications = notes
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}
