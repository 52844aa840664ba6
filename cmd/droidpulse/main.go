package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/droidpulse/internal/adb"
	"codeberg.org/mutker/droidpulse/internal/analyze"
	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/config"
	"codeberg.org/mutker/droidpulse/internal/dashboard"
	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/history"
	"codeberg.org/mutker/droidpulse/internal/llm"
	"codeberg.org/mutker/droidpulse/internal/logger"
	"codeberg.org/mutker/droidpulse/internal/netdiag"
	"codeberg.org/mutker/droidpulse/internal/pid"
	"codeberg.org/mutker/droidpulse/internal/report"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose)
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("another instance is already running")
	}
	defer pid.Remove()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx); err != nil {
		logger.Error().Err(err).Msg("scan failed")
		pid.Remove()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	bridge := targetBridge(adb.NewRunner(cfg.BridgePath, time.Duration(cfg.Timeout)*time.Second))

	// Mode switches are standalone operations: switch and exit.
	if cfg.Wireless {
		return switchWireless(ctx, bridge)
	}
	if cfg.Wired {
		netdiag.SwitchToWired(ctx, bridge)
		logger.Info().Msg("Switched back to USB mode")
		return nil
	}

	if cfg.HistoryRecent > 0 {
		return showHistory(ctx)
	}

	device, err := resolveDevice(ctx, bridge)
	if err != nil {
		return err
	}
	bridge = bridge.WithSelector(device)
	logger.Info().Str("device", device).Msg("Scanning device")

	record := collect.NewCollector(bridge).Collect(ctx)

	if cfg.Diagnostics {
		record.Diagnostics = netdiag.Collect(ctx, bridge, time.Duration(cfg.ProbeWait)*time.Second)
	}

	llmCfg := llm.DefaultConfig()
	llmCfg.Model = cfg.Model
	engine := analyze.NewEngine(llm.New(llmCfg, cfg.APIKey), cfg.Temperature)
	result := engine.Analyze(ctx, record)

	recordHistory(ctx, device, record, result)

	if err := render(record, result); err != nil {
		return err
	}

	if cfg.Report {
		gen, err := report.NewGenerator(cfg.ReportsDir)
		if err != nil {
			return err
		}
		path, err := gen.Generate(record, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "\nHTML report saved: %s\n", path)
	}

	return nil
}

// targetBridge applies the configured device selector up front, so the
// standalone mode switches address the right device when several are
// attached.
func targetBridge(bridge *adb.Runner) *adb.Runner {
	if cfg.Device == "" {
		return bridge
	}

	return bridge.WithSelector(cfg.Device)
}

func switchWireless(ctx context.Context, bridge *adb.Runner) error {
	target, err := netdiag.SwitchToWireless(ctx, bridge, cfg.Port)
	if err != nil {
		return err
	}
	logger.Info().Str("target", target).Msg("Connected wirelessly, the USB cable can be unplugged")
	return nil
}

// resolveDevice picks the scan target: the configured device when present,
// otherwise the first one the bridge reports.
func resolveDevice(ctx context.Context, bridge *adb.Runner) (string, error) {
	errFactory := errors.New()

	devices := bridge.Devices(ctx)
	if len(devices) == 0 {
		fmt.Fprintln(os.Stderr, "No devices found.")
		fmt.Fprintln(os.Stderr, "  - Check USB connection")
		fmt.Fprintln(os.Stderr, "  - Ensure USB debugging is enabled")
		fmt.Fprintf(os.Stderr, "  - Run '%s devices' to verify\n", cfg.BridgePath)
		return "", errFactory.New(errors.ErrNoDevices)
	}

	if cfg.Device == "" {
		return devices[0], nil
	}
	for _, d := range devices {
		if d == cfg.Device {
			return d, nil
		}
	}

	fmt.Fprintf(os.Stderr, "Device %s not found.\n", cfg.Device)
	fmt.Fprintf(os.Stderr, "  Available devices: %v\n", devices)
	return "", errFactory.WithData(errors.ErrDeviceNotFound, struct {
		Requested string
		Available []string
	}{cfg.Device, devices})
}

// showHistory prints the most recent recorded scans, newest first, without
// touching any device.
func showHistory(ctx context.Context) error {
	recorder, err := history.NewService(history.Config{
		DBPath:  cfg.HistoryDB,
		Enabled: true,
	})
	if err != nil {
		return err
	}
	defer recorder.Close()

	scans, err := recorder.Recent(ctx, cfg.HistoryRecent)
	if err != nil {
		return err
	}

	if cfg.JSON {
		errFactory := errors.New()
		data, err := json.MarshalIndent(scans, "", "  ")
		if err != nil {
			return errFactory.Wrap(errors.ErrInternal, err)
		}
		fmt.Println(string(data))
		return nil
	}

	dashboard.New(os.Stdout).History(scans)

	return nil
}

// recordHistory persists the scan summary. History failures are logged and
// never fail the scan.
func recordHistory(ctx context.Context, device string, record *collect.DeviceRecord, result *analyze.Result) {
	recorder, err := history.NewService(history.Config{
		DBPath:  cfg.HistoryDB,
		Enabled: cfg.History,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("History unavailable")
		return
	}
	defer recorder.Close()

	scan := &history.ScanRecord{
		Timestamp:      time.Now(),
		DeviceSerial:   device,
		Model:          record.Identity.Model,
		HealthScore:    result.HealthScore,
		AnalysisSource: result.Source,
		BatteryLevel:   record.Battery.Level,
		BatteryTempC:   record.Battery.TemperatureC,
		StorageMaxUsed: maxStorageUsed(record.Storage),
		MemoryUsedPct:  record.Memory.UsedPercent,
		RSSI:           record.Network.RSSI,
		IssueCount:     len(result.CriticalIssues),
	}
	if err := recorder.Record(ctx, scan); err != nil {
		logger.Warn().Err(err).Msg("Failed to record scan history")
	}
}

func maxStorageUsed(entries []collect.StorageEntry) *int {
	var top *int
	for _, e := range entries {
		if top == nil || e.UsePercent > *top {
			pct := e.UsePercent
			top = &pct
		}
	}
	return top
}

func render(record *collect.DeviceRecord, result *analyze.Result) error {
	errFactory := errors.New()

	switch {
	case cfg.JSON:
		out := struct {
			DeviceData *collect.DeviceRecord `json:"device_data"`
			Analysis   *analyze.Result       `json:"analysis"`
		}{record, result}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errFactory.Wrap(errors.ErrInternal, err)
		}
		fmt.Println(string(data))
	case cfg.Verbose:
		if err := printSection("RAW DEVICE DATA", record); err != nil {
			return err
		}
		if err := printSection("ANALYSIS", result); err != nil {
			return err
		}
		fmt.Println("\n=== DASHBOARD ===")
		dashboard.New(os.Stdout).Render(record, result)
	default:
		dashboard.New(os.Stdout).Render(record, result)
	}

	return nil
}

func printSection(title string, v any) error {
	errFactory := errors.New()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}
	fmt.Printf("\n=== %s ===\n%s\n", title, data)

	return nil
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
