package report

// reportTemplate is the self-contained HTML report. All derived values
// (score class, bar colors, rounded figures) are computed in Go before
// rendering, so the template only substitutes.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>DroidPulse Report — {{.Device.Brand}} {{.Device.Device}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            padding: 2rem;
            line-height: 1.6;
        }
        .container { max-width: 900px; margin: 0 auto; }
        .header {
            text-align: center;
            padding: 2rem;
            background: linear-gradient(135deg, #1e293b, #334155);
            border-radius: 12px;
            margin-bottom: 1.5rem;
            border: 1px solid #475569;
        }
        .header h1 { font-size: 2rem; color: #38bdf8; margin-bottom: 0.5rem; }
        .header .subtitle { color: #94a3b8; font-size: 0.95rem; }
        .device-badge {
            display: inline-block;
            background: #1e293b;
            padding: 0.3rem 0.8rem;
            border-radius: 20px;
            font-size: 0.85rem;
            color: #38bdf8;
            border: 1px solid #38bdf8;
            margin-top: 0.8rem;
        }
        .card {
            background: #1e293b;
            border-radius: 12px;
            padding: 1.5rem;
            margin-bottom: 1.5rem;
            border: 1px solid #334155;
        }
        .card h2 {
            font-size: 1.1rem;
            margin-bottom: 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 1px solid #334155;
        }
        .score-section { text-align: center; padding: 2rem; }
        .score-circle {
            width: 120px;
            height: 120px;
            border-radius: 50%;
            display: inline-flex;
            align-items: center;
            justify-content: center;
            font-size: 2.5rem;
            font-weight: bold;
            margin-bottom: 1rem;
        }
        .score-good { background: linear-gradient(135deg, #065f46, #059669); color: #6ee7b7; border: 3px solid #34d399; }
        .score-warning { background: linear-gradient(135deg, #713f12, #a16207); color: #fde047; border: 3px solid #facc15; }
        .score-critical { background: linear-gradient(135deg, #7f1d1d, #b91c1c); color: #fca5a5; border: 3px solid #f87171; }
        .summary { color: #94a3b8; margin-top: 0.8rem; max-width: 600px; margin-left: auto; margin-right: auto; }
        .info-grid {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 0.6rem;
        }
        .info-item { display: flex; justify-content: space-between; padding: 0.4rem 0; }
        .info-label { color: #64748b; }
        .info-value { color: #e2e8f0; font-weight: 500; }
        .progress-container {
            background: #0f172a;
            border-radius: 8px;
            height: 24px;
            overflow: hidden;
            margin: 0.4rem 0;
            position: relative;
        }
        .progress-bar {
            height: 100%;
            border-radius: 8px;
            display: flex;
            align-items: center;
            padding-left: 8px;
            font-size: 0.75rem;
            font-weight: bold;
            color: white;
            transition: width 0.5s ease;
        }
        .bar-green { background: linear-gradient(90deg, #059669, #34d399); }
        .bar-yellow { background: linear-gradient(90deg, #a16207, #facc15); }
        .bar-red { background: linear-gradient(90deg, #b91c1c, #f87171); }
        .status-badge {
            display: inline-block;
            padding: 0.2rem 0.6rem;
            border-radius: 12px;
            font-size: 0.8rem;
            font-weight: 600;
        }
        .badge-good { background: #065f46; color: #6ee7b7; }
        .badge-warning { background: #713f12; color: #fde047; }
        .badge-critical { background: #7f1d1d; color: #fca5a5; }
        .badge-info { background: #1e3a5f; color: #7dd3fc; }
        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 0.8rem;
        }
        th {
            text-align: left;
            padding: 0.6rem;
            background: #0f172a;
            color: #38bdf8;
            font-size: 0.85rem;
            border-bottom: 2px solid #334155;
        }
        td {
            padding: 0.6rem;
            border-bottom: 1px solid #1e293b;
            font-size: 0.9rem;
        }
        .issue-row { border-left: 3px solid; padding-left: 0.8rem; margin-bottom: 0.8rem; }
        .issue-critical { border-color: #f87171; background: #1a0505; padding: 0.8rem; border-radius: 0 8px 8px 0; }
        .issue-warning { border-color: #facc15; background: #1a1505; padding: 0.8rem; border-radius: 0 8px 8px 0; }
        .issue-info { border-color: #38bdf8; background: #051a2a; padding: 0.8rem; border-radius: 0 8px 8px 0; }
        .issue-title { font-weight: 600; margin-bottom: 0.3rem; }
        .issue-rec { color: #94a3b8; font-size: 0.9rem; }
        .rec-list { list-style: none; }
        .rec-list li {
            padding: 0.6rem 0.8rem;
            margin-bottom: 0.5rem;
            background: #0f172a;
            border-radius: 8px;
            border-left: 3px solid #38bdf8;
        }
        .rec-number { color: #38bdf8; font-weight: bold; margin-right: 0.5rem; }
        .footer {
            text-align: center;
            padding: 1.5rem;
            color: #475569;
            font-size: 0.85rem;
            border-top: 1px solid #334155;
            margin-top: 1rem;
        }
        .two-col { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
        @media (max-width: 700px) {
            .two-col, .info-grid { grid-template-columns: 1fr; }
            body { padding: 1rem; }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>DroidPulse</h1>
            <div class="subtitle">Android Device Health Report</div>
            <div class="device-badge">{{.Device.Brand}} {{.Device.Device}} ({{.Device.Model}}) — Android {{.Device.AndroidVersion}}</div>
        </div>

        <div class="card score-section">
            <div class="score-circle {{.ScoreClass}}">{{.Score}}/10</div>
            <h2 style="border: none; text-align: center;">Device Health Score</h2>
            <div class="summary">{{.Summary}}</div>
        </div>

        <div class="two-col">
            <div class="card">
                <h2>🔋 Battery</h2>
                <span class="status-badge badge-{{.BatteryStatus.Status}}">{{.BatteryStatus.StatusUpper}}</span>
                <div style="margin-top: 1rem;">
                    <div style="display: flex; justify-content: space-between;">
                        <span>Level</span><span>{{.Battery.Level}}%</span>
                    </div>
                    <div class="progress-container">
                        <div class="progress-bar {{.Battery.BarClass}}" style="width: {{.Battery.Level}}%">{{.Battery.Level}}%</div>
                    </div>
                </div>
                <div class="info-grid" style="margin-top: 0.8rem;">
                    <div class="info-item"><span class="info-label">Health</span><span class="info-value">{{.Battery.Health}}</span></div>
                    <div class="info-item"><span class="info-label">Status</span><span class="info-value">{{.Battery.Status}}</span></div>
                    <div class="info-item"><span class="info-label">Temperature</span><span class="info-value">{{.Battery.Temperature}}</span></div>
                    <div class="info-item"><span class="info-label">Technology</span><span class="info-value">{{.Battery.Technology}}</span></div>
                </div>
                <div style="margin-top: 0.5rem; color: #94a3b8; font-size: 0.9rem;">{{.BatteryStatus.Detail}}</div>
            </div>

            <div class="card">
                <h2>🌐 Network</h2>
                <span class="status-badge badge-{{.NetworkStatus.Status}}">{{.NetworkStatus.StatusUpper}}</span>
                <div class="info-grid" style="margin-top: 1rem;">
                    <div class="info-item"><span class="info-label">SSID</span><span class="info-value">{{.Network.SSID}}</span></div>
                    <div class="info-item"><span class="info-label">Signal</span><span class="info-value">{{.Network.Signal}}</span></div>
                    <div class="info-item"><span class="info-label">Band</span><span class="info-value">{{.Network.Band}}</span></div>
                    <div class="info-item"><span class="info-label">Speed</span><span class="info-value">{{.Network.LinkSpeed}}</span></div>
                    <div class="info-item"><span class="info-label">Frequency</span><span class="info-value">{{.Network.Frequency}}</span></div>
                    <div class="info-item"><span class="info-label">IP</span><span class="info-value">{{.Network.IP}}</span></div>
                </div>
                <div style="margin-top: 0.5rem; color: #94a3b8; font-size: 0.9rem;">{{.NetworkStatus.Detail}}</div>
            </div>
        </div>

        <div class="card">
            <h2>💾 Storage</h2>
            <span class="status-badge badge-{{.StorageStatus.Status}}">{{.StorageStatus.StatusUpper}}</span>
            <table>
                <thead><tr><th>Partition</th><th>Size</th><th>Used</th><th>Available</th><th>Usage</th></tr></thead>
                <tbody>
                {{range .Storage}}
                    <tr>
                        <td>{{.MountedOn}}</td>
                        <td>{{.Size}}</td>
                        <td>{{.Used}}</td>
                        <td>{{.Available}}</td>
                        <td>
                            <div class="progress-container" style="height: 18px; min-width: 100px;">
                                <div class="progress-bar {{.BarClass}}" style="width: {{.UsePercent}}%">{{.UsePercent}}%</div>
                            </div>
                        </td>
                    </tr>
                {{end}}
                </tbody>
            </table>
            <div style="margin-top: 0.5rem; color: #94a3b8; font-size: 0.9rem;">{{.StorageStatus.Detail}}</div>
        </div>

        <div class="two-col">
            <div class="card">
                <h2>🧠 Memory</h2>
                <span class="status-badge badge-{{.MemoryStatus.Status}}">{{.MemoryStatus.StatusUpper}}</span>
                <div style="margin-top: 1rem;">
                    <div style="display: flex; justify-content: space-between;">
                        <span>RAM Usage</span><span>{{.Memory.UsedPercent}}%</span>
                    </div>
                    <div class="progress-container">
                        <div class="progress-bar {{.Memory.BarClass}}" style="width: {{.Memory.UsedPercent}}%">{{.Memory.UsedPercent}}%</div>
                    </div>
                    <div class="info-grid" style="margin-top: 0.5rem;">
                        <div class="info-item"><span class="info-label">Total</span><span class="info-value">{{.Memory.Total}}</span></div>
                        <div class="info-item"><span class="info-label">Available</span><span class="info-value">{{.Memory.Available}}</span></div>
                    </div>
                </div>
                <div style="margin-top: 0.8rem;">
                    <strong style="font-size: 0.85rem; color: #64748b;">Top Consumers</strong>
                    {{range .Memory.TopConsumers}}
                    <div class="info-item">
                        <span class="info-label">{{.Process}}</span>
                        <span class="info-value">{{.Value}}</span>
                    </div>
                    {{end}}
                </div>
            </div>

            <div class="card">
                <h2>⚡ CPU</h2>
                <div class="info-grid" style="margin-top: 0.5rem;">
                    <div class="info-item"><span class="info-label">Load 1m</span><span class="info-value">{{.Cpu.Load1}}</span></div>
                    <div class="info-item"><span class="info-label">Load 5m</span><span class="info-value">{{.Cpu.Load5}}</span></div>
                    <div class="info-item"><span class="info-label">Load 15m</span><span class="info-value">{{.Cpu.Load15}}</span></div>
                </div>
                <div style="margin-top: 0.8rem;">
                    <strong style="font-size: 0.85rem; color: #64748b;">Top Consumers</strong>
                    {{range .Cpu.TopConsumers}}
                    <div class="info-item">
                        <span class="info-label">{{.Process}}</span>
                        <span class="info-value">{{.Value}}</span>
                    </div>
                    {{end}}
                </div>
            </div>
        </div>

        <div class="card">
            <h2>📱 Apps</h2>
            <div class="info-grid">
                <div class="info-item"><span class="info-label">Total Packages</span><span class="info-value">{{.Apps.TotalPackages}}</span></div>
                <div class="info-item"><span class="info-label">System Apps</span><span class="info-value">{{.Apps.SystemCount}}</span></div>
                <div class="info-item"><span class="info-label">Third-Party Apps</span><span class="info-value">{{.Apps.ThirdPartyCount}}</span></div>
            </div>
        </div>

        {{if .Issues}}
        <div class="card">
            <h2>⚠️ Issues</h2>
            {{range .Issues}}
            <div class="issue-row issue-{{.Severity}}" style="margin-top: 0.5rem;">
                <div class="issue-title">
                    <span class="status-badge badge-{{.Severity}}">{{.SeverityUpper}}</span>
                    {{.CategoryUpper}} — {{.Description}}
                </div>
                <div class="issue-rec">💡 {{.Recommendation}}</div>
            </div>
            {{end}}
        </div>
        {{end}}

        {{if .Recommendations}}
        <div class="card">
            <h2>🤖 Recommendations</h2>
            <ul class="rec-list">
                {{range .Recommendations}}
                <li><span class="rec-number">{{.Number}}.</span> {{.Text}}</li>
                {{end}}
            </ul>
        </div>
        {{end}}

        {{if .SecurityFindings}}
        <div class="card">
            <h2>🔒 Security Findings</h2>
            {{range .SecurityFindings}}
            <div style="padding: 0.4rem 0; color: #94a3b8;">• {{.}}</div>
            {{end}}
        </div>
        {{end}}

        <div class="footer">
            Generated by <strong>DroidPulse</strong> — Android Device Health Dashboard<br>
            Report generated on {{.Device.Timestamp}} | Serial: {{.Device.Serial}}
        </div>
    </div>
</body>
</html>`
