package netdiag

import (
	"context"
	"runtime"
	"time"

	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/errors"
	probing "github.com/prometheus-community/pro-bing"
)

const (
	pingCount      = 5
	pingPacketWait = 2 * time.Second
)

// Ping measures round-trip latency from this host to the device's own
// reported address.
func Ping(ctx context.Context, target string, count int) (*collect.PingStats, error) {
	errFactory := errors.New()

	pinger, err := probing.NewPinger(target)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrPingFailed, err)
	}

	pinger.Count = count
	pinger.Timeout = time.Duration(count) * pingPacketWait
	pinger.SetPrivileged(runtime.GOOS == "windows")

	done := make(chan error, 1)
	go func() {
		done <- pinger.Run()
	}()

	select {
	case err = <-done:
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrPingFailed, err)
		}
	case <-ctx.Done():
		pinger.Stop()
		return nil, errFactory.Wrap(errors.ErrPingFailed, ctx.Err())
	}

	stats := pinger.Statistics()

	return &collect.PingStats{
		PacketsSent:     stats.PacketsSent,
		PacketsReceived: stats.PacketsRecv,
		PacketLoss:      stats.PacketLoss,
		RTTMinMs:        ms(stats.MinRtt),
		RTTAvgMs:        ms(stats.AvgRtt),
		RTTMaxMs:        ms(stats.MaxRtt),
		RTTMdevMs:       ms(stats.StdDevRtt),
	}, nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
