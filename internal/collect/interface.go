package collect

import "context"

// Commander runs one device-bridge command and returns its trimmed output.
// Empty output means "no data"; the runner never surfaces errors here.
type Commander interface {
	Run(ctx context.Context, command string) string
}
