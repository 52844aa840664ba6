// Package dashboard renders a scan and its analysis as a color-coded
// terminal dashboard. All output goes to the writer the renderer was built
// with, so stdout stays machine-readable in JSON mode.
package dashboard

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/mutker/droidpulse/internal/analyze"
	"codeberg.org/mutker/droidpulse/internal/collect"
	"codeberg.org/mutker/droidpulse/internal/history"
)

const (
	innerWidth      = 70
	topConsumerRows = 5
)

type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes the full dashboard: identity header, score, one panel per
// subsystem, then issues and recommendations. Panels for absent data render
// their placeholders instead of being skipped, so the layout is stable.
func (r *Renderer) Render(record *collect.DeviceRecord, result *analyze.Result) {
	r.header(record.Identity)
	r.healthScore(result)
	r.battery(record.Battery)
	r.storage(record.Storage)
	r.memory(record.Memory)
	r.cpu(record.Cpu)
	r.network(record.Network)
	r.apps(record.Apps)
	if record.Diagnostics != nil {
		r.diagnostics(record.Diagnostics)
	}
	r.issues(result)
	r.recommendations(result)
	fmt.Fprintln(r.w)
}

func (r *Renderer) panel(title string, rows []string) {
	fmt.Fprintln(r.w, boxTop(title, innerWidth))
	for _, row := range rows {
		fmt.Fprintln(r.w, boxRow(row, innerWidth))
	}
	fmt.Fprintln(r.w, boxBot(innerWidth))
}

func (r *Renderer) header(id collect.Identity) {
	rows := []string{
		kvRow("Device", boldStyle.Render(fmt.Sprintf("%s %s (%s)", orNA(id.Brand), orNA(id.Device), orNA(id.Model)))),
		kvRow("Android", valueStyle.Render(fmt.Sprintf("%s (SDK %s)", orNA(id.AndroidVersion), orNA(id.SDKLevel)))),
		kvRow("Build", valueStyle.Render(orNA(id.BuildNumber))),
		kvRow("Serial", valueStyle.Render(orNA(id.Serial))),
		kvRow("Hardware", valueStyle.Render(orNA(id.Hardware))),
		kvRow("Scanned", valueStyle.Render(orNA(id.Timestamp))),
	}
	r.panel("Device Info", rows)
}

func (r *Renderer) healthScore(result *analyze.Result) {
	score := result.HealthScore
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	style := scoreStyle(score)
	scoreBar := strings.Repeat("█", score) + strings.Repeat("░", 10-score)

	title := "Health Analysis"
	if result.Source == analyze.SourceAI {
		title = "AI Health Analysis"
	}

	rows := []string{
		dimStyle.Render("Health Score: ") + style.Bold(true).Render(fmt.Sprintf("%d/10", score)) +
			"  " + style.Render("["+scoreBar+"]"),
		"",
	}
	rows = append(rows, wrap(result.Summary, innerWidth, valueStyle)...)
	r.panel(title, rows)
}

func (r *Renderer) battery(b collect.Battery) {
	level := 0
	if b.Level != nil {
		level = *b.Level
	}
	levelStyle := okStyle
	switch {
	case level <= 20:
		levelStyle = critStyle
	case level <= 50:
		levelStyle = warnStyle
	}

	tempVal := "N/A"
	tempStyle := valueStyle
	if b.TemperatureC != nil {
		tempVal = fmt.Sprintf("%.1f°C", *b.TemperatureC)
		switch {
		case *b.TemperatureC >= 45:
			tempStyle = critStyle
		case *b.TemperatureC >= 35:
			tempStyle = warnStyle
		default:
			tempStyle = okStyle
		}
	}

	rows := []string{
		kvRow("Level", levelStyle.Bold(true).Render(fmt.Sprintf("%d%%", level))+
			"  "+levelStyle.Render("["+bar(float64(level), 20)+"]")),
		kvRow("Health", statusStyle(b.HealthText).Render(orNA(b.HealthText))),
		kvRow("Status", valueStyle.Render(orNA(b.StatusText))),
		kvRow("Temperature", tempStyle.Render(tempVal)),
		kvRow("Voltage", valueStyle.Render(intSuffix(b.Voltage, "mV"))),
		kvRow("Technology", valueStyle.Render(strOrNA(b.Technology))),
		kvRow("Power", valueStyle.Render(orNA(b.PowerSource))),
	}
	r.panel("Battery", rows)
}

func (r *Renderer) storage(entries []collect.StorageEntry) {
	if len(entries) == 0 {
		r.panel("Storage", []string{dimStyle.Render("No storage data collected.")})
		return
	}

	header := fmt.Sprintf("%-20s %7s %7s %9s %6s  %s",
		"Partition", "Size", "Used", "Avail", "Usage", "")
	rows := []string{titleStyle.Render(header)}
	for _, e := range entries {
		style := pctStyle(float64(e.UsePercent))
		line := fmt.Sprintf("%-20s %7s %7s %9s ", e.MountedOn, e.Size, e.Used, e.Available)
		line = valueStyle.Render(line) +
			styledPad(style.Render(fmt.Sprintf("%5d%%", e.UsePercent)), 7) +
			style.Render("["+bar(float64(e.UsePercent), 10)+"]")
		rows = append(rows, line)
	}
	r.panel("Storage", rows)
}

func (r *Renderer) memory(m collect.Memory) {
	usedPct := 0.0
	if m.UsedPercent != nil {
		usedPct = *m.UsedPercent
	}
	style := pctStyle(usedPct)

	rows := []string{
		kvRow("RAM Usage", style.Bold(true).Render(fmt.Sprintf("%.1f%%", usedPct))+
			"  "+style.Render("["+bar(usedPct, 20)+"]")),
		kvRow("Total", valueStyle.Render(floatSuffix(m.TotalMB, " MB"))),
		kvRow("Used", valueStyle.Render(floatSuffix(m.UsedMB, " MB"))),
		kvRow("Available", valueStyle.Render(floatSuffix(m.AvailableMB, " MB"))),
	}

	if len(m.TopConsumers) > 0 {
		rows = append(rows, "", dimStyle.Bold(true).Render("Top Memory Consumers:"))
		for i, c := range m.TopConsumers {
			if i >= topConsumerRows {
				break
			}
			memMB := float64(c.MemoryKB) / 1024
			rows = append(rows, fmt.Sprintf("  %s  %s",
				warnStyle.Render(fmt.Sprintf("%7.1f MB", memMB)),
				valueStyle.Render(c.Process)))
		}
	}
	r.panel("Memory", rows)
}

func (r *Renderer) cpu(c collect.Cpu) {
	rows := []string{
		kvRow("Load Average", boldStyle.Render(floatOrNA(c.Load1Min))+
			valueStyle.Render(fmt.Sprintf(" / %s / %s", floatOrNA(c.Load5Min), floatOrNA(c.Load15Min)))+
			dimStyle.Render("  (1m / 5m / 15m)")),
	}

	if len(c.TopConsumers) > 0 {
		rows = append(rows, "", dimStyle.Bold(true).Render("Top CPU Consumers:"))
		for i, tc := range c.TopConsumers {
			if i >= topConsumerRows {
				break
			}
			style := valueStyle
			switch {
			case tc.CpuPercent > 20:
				style = critStyle
			case tc.CpuPercent > 10:
				style = warnStyle
			}
			rows = append(rows, fmt.Sprintf("  %s  %s",
				style.Render(fmt.Sprintf("%5.1f%%", tc.CpuPercent)),
				valueStyle.Render(tc.Process)))
		}
	}
	r.panel("CPU", rows)
}

func (r *Renderer) network(n collect.Network) {
	signal := n.SignalQuality
	if signal == "" {
		signal = "Unknown"
	}

	dns := "Not configured"
	if len(n.DNS) > 0 {
		dns = strings.Join(n.DNS, ", ")
	}

	ip := strOrNA(n.IPAddress)
	if n.SubnetMask != nil {
		ip += "/" + *n.SubnetMask
	}

	rows := []string{
		kvRow("SSID", boldStyle.Render(strOrNA(n.SSID))),
		kvRow("Signal", statusStyle(signal).Bold(true).Render(fmt.Sprintf("%s (%s dBm)", signal, intOrNA(n.RSSI)))),
		kvRow("Band", valueStyle.Render(orNA(n.Band))),
		kvRow("Link Speed", valueStyle.Render(intSuffix(n.LinkSpeedMbps, " Mbps"))),
		kvRow("Frequency", valueStyle.Render(intSuffix(n.FrequencyMHz, " MHz"))),
		kvRow("IP Address", valueStyle.Render(ip)),
		kvRow("IPv6", valueStyle.Render(strOrNA(n.IPv6Address))),
		kvRow("Connection", valueStyle.Render(orNA(n.ConnectionType))),
		kvRow("DNS", valueStyle.Render(dns)),
	}
	r.panel("Network", rows)
}

func (r *Renderer) apps(a collect.Apps) {
	rows := []string{
		kvRow("Total Packages", boldStyle.Render(fmt.Sprintf("%d", a.TotalPackages))),
		kvRow("System Apps", valueStyle.Render(fmt.Sprintf("%d", a.SystemCount))),
		kvRow("Third-Party Apps", appStyle.Render(fmt.Sprintf("%d", a.ThirdPartyCount))),
	}
	r.panel("Apps", rows)
}

func (r *Renderer) diagnostics(d *collect.NetworkDiagnostics) {
	rows := []string{
		kvRow("Connection", valueStyle.Render(orNA(d.ConnectionType))),
		kvRow("Device IP", valueStyle.Render(strOrNA(d.DeviceIP))),
		kvRow("Gateway", valueStyle.Render(strOrNA(d.Gateway))),
	}

	if d.Wifi.SSID != nil {
		rows = append(rows,
			kvRow("WiFi", boldStyle.Render(*d.Wifi.SSID)+
				dimStyle.Render(fmt.Sprintf("  (%s, %s)", orNA(d.Wifi.SecurityName), orNA(d.Wifi.StandardName)))),
			kvRow("Signal", statusStyle(d.Wifi.SignalQuality).Render(
				fmt.Sprintf("%s (%s dBm, %s%%)", orNA(d.Wifi.SignalQuality), intOrNA(d.Wifi.RSSI), intOrNA(d.Wifi.SignalPercent)))),
		)
	}

	if p := d.Ping; p != nil {
		lossStyle := okStyle
		if p.PacketLoss > 0 {
			lossStyle = warnStyle
		}
		rows = append(rows, kvRow("Ping", valueStyle.Render(
			fmt.Sprintf("avg=%.1fms min=%.1fms max=%.1fms  ", p.RTTAvgMs, p.RTTMinMs, p.RTTMaxMs))+
			lossStyle.Render(fmt.Sprintf("loss=%.1f%%", p.PacketLoss))))
	}

	if len(d.DNSTests) > 0 {
		hosts := make([]string, 0, len(d.DNSTests))
		for host := range d.DNSTests {
			hosts = append(hosts, host)
		}
		sort.Strings(hosts)
		for _, host := range hosts {
			probe := d.DNSTests[host]
			status := critStyle.Render("FAIL")
			if probe.Resolved {
				status = okStyle.Render("OK")
				if probe.LatencyMs != nil {
					status += dimStyle.Render(fmt.Sprintf("  %.1fms", *probe.LatencyMs))
				}
			}
			rows = append(rows, kvRow("DNS "+host, status))
		}
	}
	r.panel("Network Diagnostics", rows)
}

// History renders recorded scans one row per scan, newest first, matching
// the column order of the scans table.
func (r *Renderer) History(scans []history.ScanRecord) {
	if len(scans) == 0 {
		r.panel("Scan History", []string{dimStyle.Render("No recorded scans.")})
		return
	}

	header := fmt.Sprintf("%-17s %-14s %6s %6s %6s %6s %7s",
		"Scanned", "Device", "Score", "Batt", "Stor", "Mem", "Issues")
	rows := []string{titleStyle.Render(header)}
	for _, s := range scans {
		issuesStyle := okStyle
		if s.IssueCount > 0 {
			issuesStyle = warnStyle
		}
		line := valueStyle.Render(fmt.Sprintf("%-17s %-14s ",
			s.Timestamp.Format("2006-01-02 15:04"), s.DeviceSerial)) +
			scoreStyle(s.HealthScore).Bold(true).Render(fmt.Sprintf("%2d/10", s.HealthScore)) +
			valueStyle.Render(fmt.Sprintf(" %6s %6s %6s ",
				pctOrDash(s.BatteryLevel), pctOrDash(s.StorageMaxUsed), floatPctOrDash(s.MemoryUsedPct))) +
			issuesStyle.Render(fmt.Sprintf("%6d", s.IssueCount))
		rows = append(rows, line)
	}
	r.panel("Scan History", rows)
}

func (r *Renderer) issues(result *analyze.Result) {
	if len(result.CriticalIssues) == 0 {
		r.panel("Issues", []string{okStyle.Render("No critical issues found!")})
		return
	}

	var rows []string
	for _, issue := range result.CriticalIssues {
		style := severityStyle(issue.Severity)
		rows = append(rows,
			styledPad(style.Render(strings.ToUpper(issue.Severity)), 10)+
				styledPad(valueStyle.Render(issue.Category), 10)+
				boldStyle.Render(issue.Description))
		if issue.Recommendation != "" {
			rows = append(rows, strings.Repeat(" ", 20)+dimStyle.Render(issue.Recommendation))
		}
	}
	r.panel("Issues & Recommendations", rows)
}

func (r *Renderer) recommendations(result *analyze.Result) {
	if len(result.Recommendations) == 0 {
		return
	}

	var rows []string
	for i, rec := range result.Recommendations {
		prefix := infoStyle.Bold(true).Render(fmt.Sprintf("%d. ", i+1))
		lines := wrap(rec, innerWidth-4, valueStyle)
		for j, line := range lines {
			if j == 0 {
				rows = append(rows, prefix+line)
			} else {
				rows = append(rows, "   "+line)
			}
		}
	}
	r.panel("Recommendations", rows)
}

func kvRow(key, styledVal string) string {
	return styledPad(dimStyle.Render(key+":"), 16) + styledVal
}

// wrap splits text into styled lines no wider than width. Single words
// longer than the width are left intact.
func wrap(text string, width int, style lipgloss.Style) []string {
	if text == "" {
		return []string{dimStyle.Render("No summary available.")}
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, style.Render(line.String()))
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, style.Render(line.String()))
	}
	return lines
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func strOrNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func intSuffix(v *int, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%s", *v, suffix)
}

func floatSuffix(v *float64, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%s", *v, suffix)
}

func pctOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%%", *v)
}

func floatPctOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", *v)
}
