package collect

import (
	"context"
	"time"

	"codeberg.org/mutker/droidpulse/internal/logger"
)

const timestampLayout = "2006-01-02 15:04:05"

var identityProps = []struct {
	field func(*Identity) *string
	prop  string
}{
	{func(i *Identity) *string { return &i.Model }, "ro.product.model"},
	{func(i *Identity) *string { return &i.Brand }, "ro.product.brand"},
	{func(i *Identity) *string { return &i.Device }, "ro.product.device"},
	{func(i *Identity) *string { return &i.AndroidVersion }, "ro.build.version.release"},
	{func(i *Identity) *string { return &i.SDKLevel }, "ro.build.version.sdk"},
	{func(i *Identity) *string { return &i.BuildNumber }, "ro.build.display.id"},
	{func(i *Identity) *string { return &i.Serial }, "ro.serialno"},
	{func(i *Identity) *string { return &i.Hardware }, "ro.hardware"},
}

// Collector runs every extractor in a fixed sequence against one device and
// assembles the composite record. It holds no state between scans.
type Collector struct {
	cmd Commander
}

func NewCollector(cmd Commander) *Collector {
	return &Collector{cmd: cmd}
}

// Collect gathers all device data. Each sub-record degrades independently to
// its absent-fields state when its commands return no output.
func (c *Collector) Collect(ctx context.Context) *DeviceRecord {
	logger.Info().Msg("Collecting device data")

	rec := &DeviceRecord{
		Identity: c.identity(ctx),
		Battery:  ExtractBattery(c.cmd.Run(ctx, "shell dumpsys battery")),
		Storage:  ExtractStorage(c.cmd.Run(ctx, "shell df -h")),
		Memory: ExtractMemory(
			c.cmd.Run(ctx, "shell cat /proc/meminfo"),
			c.cmd.Run(ctx, "shell dumpsys meminfo"),
		),
		Cpu: ExtractCpu(c.cmd.Run(ctx, "shell dumpsys cpuinfo")),
		Network: ExtractNetwork(
			c.cmd.Run(ctx, "shell dumpsys wifi"),
			c.cmd.Run(ctx, "shell ip addr show wlan0"),
			c.cmd.Run(ctx, "shell getprop net.dns1"),
			c.cmd.Run(ctx, "shell getprop net.dns2"),
			c.cmd.Run(ctx, "shell dumpsys connectivity"),
		),
		Apps: ExtractApps(
			c.cmd.Run(ctx, "shell pm list packages"),
			c.cmd.Run(ctx, "shell pm list packages -3"),
		),
		ErrorLog: ExtractErrorLog(c.cmd.Run(ctx, "logcat -d *:E")),
	}

	logger.Info().Msg("Data collection complete")

	return rec
}

func (c *Collector) identity(ctx context.Context) Identity {
	var id Identity
	for _, p := range identityProps {
		*p.field(&id) = c.cmd.Run(ctx, "shell getprop "+p.prop)
	}
	id.Timestamp = time.Now().Format(timestampLayout)

	return id
}
