package netdiag

import (
	"context"
	"time"
)

// Bridge is the slice of the command runner the diagnostics suite needs.
type Bridge interface {
	Run(ctx context.Context, command string) string
	RunTimeout(ctx context.Context, command string, timeout time.Duration) string
	RunHost(ctx context.Context, command string) string
	Selector() string
}
