// Package report renders a scan and its analysis into a self-contained HTML
// file for sharing outside the terminal.
package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/mutker/droidpulse/internal/analyze"
	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

const (
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
	filenameLayout  = "20060102_150405"
	consumerRows    = 5
)

type Generator struct {
	dir  string
	tmpl *template.Template
	now  func() time.Time
}

func NewGenerator(dir string) (*Generator, error) {
	errFactory := errors.New()

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrReportWrite, err)
	}

	return &Generator{dir: dir, tmpl: tmpl, now: time.Now}, nil
}

// Generate writes the report and returns its path. The reports directory is
// created on first use.
func (g *Generator) Generate(record *collect.DeviceRecord, result *analyze.Result) (string, error) {
	errFactory := errors.New()

	if err := os.MkdirAll(g.dir, defaultDirPerm); err != nil {
		return "", errFactory.Wrap(errors.ErrReportWrite, err)
	}

	device := record.Identity.Device
	if device == "" {
		device = "unknown"
	}
	filename := fmt.Sprintf("droidpulse_%s_%s.html", device, g.now().Format(filenameLayout))
	path := filepath.Join(g.dir, filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFilePerm)
	if err != nil {
		return "", errFactory.Wrap(errors.ErrReportWrite, err)
	}

	if err := g.tmpl.Execute(f, buildView(record, result)); err != nil {
		f.Close()
		return "", errFactory.Wrap(errors.ErrReportWrite, err)
	}
	if err := f.Close(); err != nil {
		return "", errFactory.Wrap(errors.ErrReportWrite, err)
	}

	logger.Info().Str("path", path).Msg("Report saved")

	return path, nil
}

// View model. Everything the template shows is computed here so the
// template stays substitution-only.

type view struct {
	Device           collect.Identity
	Score            int
	ScoreClass       string
	Summary          string
	BatteryStatus    statusView
	StorageStatus    statusView
	MemoryStatus     statusView
	NetworkStatus    statusView
	Battery          batteryView
	Storage          []storageView
	Memory           memoryView
	Cpu              cpuView
	Network          networkView
	Apps             collect.Apps
	Issues           []issueView
	Recommendations  []recView
	SecurityFindings []string
}

type statusView struct {
	Status      string
	StatusUpper string
	Detail      string
}

type batteryView struct {
	Level       int
	BarClass    string
	Health      string
	Status      string
	Temperature string
	Technology  string
}

type storageView struct {
	MountedOn  string
	Size       string
	Used       string
	Available  string
	UsePercent int
	BarClass   string
}

type memoryView struct {
	UsedPercent  string
	BarClass     string
	Total        string
	Available    string
	TopConsumers []consumerView
}

type cpuView struct {
	Load1        string
	Load5        string
	Load15       string
	TopConsumers []consumerView
}

type consumerView struct {
	Process string
	Value   string
}

type networkView struct {
	SSID      string
	Signal    string
	Band      string
	LinkSpeed string
	Frequency string
	IP        string
}

type issueView struct {
	Severity       string
	SeverityUpper  string
	CategoryUpper  string
	Description    string
	Recommendation string
}

type recView struct {
	Number int
	Text   string
}

func buildView(record *collect.DeviceRecord, result *analyze.Result) view {
	v := view{
		Device:           record.Identity,
		Score:            result.HealthScore,
		ScoreClass:       scoreClass(result.HealthScore),
		Summary:          result.Summary,
		BatteryStatus:    statusOf(result.Battery),
		StorageStatus:    statusOf(result.Storage),
		MemoryStatus:     statusOf(result.Memory),
		NetworkStatus:    statusOf(result.Network),
		Apps:             record.Apps,
		SecurityFindings: result.SecurityFindings,
	}

	level := 0
	if record.Battery.Level != nil {
		level = *record.Battery.Level
	}
	v.Battery = batteryView{
		Level:       level,
		BarClass:    levelBarClass(level),
		Health:      orNA(record.Battery.HealthText),
		Status:      orNA(record.Battery.StatusText),
		Temperature: tempString(record.Battery.TemperatureC),
		Technology:  derefOr(record.Battery.Technology, "N/A"),
	}

	for _, e := range record.Storage {
		v.Storage = append(v.Storage, storageView{
			MountedOn:  e.MountedOn,
			Size:       e.Size,
			Used:       e.Used,
			Available:  e.Available,
			UsePercent: e.UsePercent,
			BarClass:   pctBarClass(float64(e.UsePercent)),
		})
	}

	usedPct := 0.0
	if record.Memory.UsedPercent != nil {
		usedPct = *record.Memory.UsedPercent
	}
	v.Memory = memoryView{
		UsedPercent: fmt.Sprintf("%.1f", usedPct),
		BarClass:    pctBarClass(usedPct),
		Total:       floatMB(record.Memory.TotalMB),
		Available:   floatMB(record.Memory.AvailableMB),
	}
	for i, c := range record.Memory.TopConsumers {
		if i >= consumerRows {
			break
		}
		v.Memory.TopConsumers = append(v.Memory.TopConsumers, consumerView{
			Process: c.Process,
			Value:   fmt.Sprintf("%.1f MB", float64(c.MemoryKB)/1024),
		})
	}

	v.Cpu = cpuView{
		Load1:  floatOrNA(record.Cpu.Load1Min),
		Load5:  floatOrNA(record.Cpu.Load5Min),
		Load15: floatOrNA(record.Cpu.Load15Min),
	}
	for i, c := range record.Cpu.TopConsumers {
		if i >= consumerRows {
			break
		}
		v.Cpu.TopConsumers = append(v.Cpu.TopConsumers, consumerView{
			Process: c.Process,
			Value:   fmt.Sprintf("%.1f%%", c.CpuPercent),
		})
	}

	signal := record.Network.SignalQuality
	if signal == "" {
		signal = "Unknown"
	}
	ip := derefOr(record.Network.IPAddress, "N/A")
	if record.Network.SubnetMask != nil {
		ip += "/" + *record.Network.SubnetMask
	}
	v.Network = networkView{
		SSID:      derefOr(record.Network.SSID, "N/A"),
		Signal:    fmt.Sprintf("%s (%s dBm)", signal, intOrNA(record.Network.RSSI)),
		Band:      orNA(record.Network.Band),
		LinkSpeed: intUnit(record.Network.LinkSpeedMbps, " Mbps"),
		Frequency: intUnit(record.Network.FrequencyMHz, " MHz"),
		IP:        ip,
	}

	for _, issue := range result.CriticalIssues {
		v.Issues = append(v.Issues, issueView{
			Severity:       issue.Severity,
			SeverityUpper:  strings.ToUpper(issue.Severity),
			CategoryUpper:  strings.ToUpper(issue.Category),
			Description:    issue.Description,
			Recommendation: issue.Recommendation,
		})
	}
	for i, rec := range result.Recommendations {
		v.Recommendations = append(v.Recommendations, recView{Number: i + 1, Text: rec})
	}

	return v
}

func statusOf(sub analyze.Subsystem) statusView {
	status := sub.Status
	if status == "" {
		status = analyze.StatusWarning
	}
	return statusView{
		Status:      status,
		StatusUpper: strings.ToUpper(status),
		Detail:      sub.Detail,
	}
}

func scoreClass(score int) string {
	switch {
	case score >= 8:
		return "score-good"
	case score >= 5:
		return "score-warning"
	default:
		return "score-critical"
	}
}

func levelBarClass(level int) string {
	switch {
	case level > 50:
		return "bar-green"
	case level > 20:
		return "bar-yellow"
	default:
		return "bar-red"
	}
}

func pctBarClass(pct float64) string {
	switch {
	case pct > 90:
		return "bar-red"
	case pct > 75:
		return "bar-yellow"
	default:
		return "bar-green"
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func intUnit(v *int, unit string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%s", *v, unit)
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func floatMB(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f MB", *v)
}

func tempString(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f°C", *v)
}
