package collect

// DeviceRecord is the immutable snapshot assembled by one scan. Sub-records
// degrade independently: a failed bridge command leaves the corresponding
// fields absent rather than aborting the scan.
type DeviceRecord struct {
	Identity    Identity            `json:"device_info"`
	Battery     Battery             `json:"battery"`
	Storage     []StorageEntry      `json:"storage"`
	Memory      Memory              `json:"memory"`
	Cpu         Cpu                 `json:"cpu"`
	Network     Network             `json:"network"`
	Apps        Apps                `json:"apps"`
	ErrorLog    ErrorLog            `json:"error_logs"`
	Diagnostics *NetworkDiagnostics `json:"network_diagnostics,omitempty"`
}

type Identity struct {
	Model          string `json:"model"`
	Brand          string `json:"brand"`
	Device         string `json:"device"`
	AndroidVersion string `json:"android_version"`
	SDKLevel       string `json:"sdk_level"`
	BuildNumber    string `json:"build_number"`
	Serial         string `json:"serial"`
	Hardware       string `json:"hardware"`
	Timestamp      string `json:"timestamp"`
}

type Battery struct {
	Level           *int     `json:"level,omitempty"`
	Scale           *int     `json:"scale,omitempty"`
	Voltage         *int     `json:"voltage,omitempty"`
	Temperature     *int     `json:"temperature,omitempty"`
	TemperatureC    *float64 `json:"temperature_celsius,omitempty"`
	Technology      *string  `json:"technology,omitempty"`
	Status          *int     `json:"status,omitempty"`
	Health          *int     `json:"health,omitempty"`
	StatusText      string   `json:"status_text,omitempty"`
	HealthText      string   `json:"health_text,omitempty"`
	ACPowered       *bool    `json:"ac_powered,omitempty"`
	USBPowered      *bool    `json:"usb_powered,omitempty"`
	WirelessPowered *bool    `json:"wireless_powered,omitempty"`
	Present         *bool    `json:"present,omitempty"`
	PowerSource     string   `json:"power_source,omitempty"`
}

// StorageEntry describes one mount point, in report order. Duplicate mount
// paths are kept as reported.
type StorageEntry struct {
	Filesystem string `json:"filesystem"`
	Size       string `json:"size"`
	Used       string `json:"used"`
	Available  string `json:"available"`
	UsePercent int    `json:"use_percent"`
	MountedOn  string `json:"mounted_on"`
}

type Memory struct {
	TotalKB      *int             `json:"total_kb,omitempty"`
	FreeKB       *int             `json:"free_kb,omitempty"`
	AvailableKB  *int             `json:"available_kb,omitempty"`
	BuffersKB    *int             `json:"buffers_kb,omitempty"`
	CachedKB     *int             `json:"cached_kb,omitempty"`
	UsedKB       *int             `json:"used_kb,omitempty"`
	UsedPercent  *float64         `json:"used_percent,omitempty"`
	TotalMB      *float64         `json:"total_mb,omitempty"`
	FreeMB       *float64         `json:"free_mb,omitempty"`
	AvailableMB  *float64         `json:"available_mb,omitempty"`
	BuffersMB    *float64         `json:"buffers_mb,omitempty"`
	CachedMB     *float64         `json:"cached_mb,omitempty"`
	UsedMB       *float64         `json:"used_mb,omitempty"`
	TopConsumers []MemoryConsumer `json:"top_consumers"`
}

type MemoryConsumer struct {
	MemoryKB int    `json:"memory_kb"`
	Process  string `json:"process"`
}

type Cpu struct {
	Load1Min     *float64      `json:"load_1min,omitempty"`
	Load5Min     *float64      `json:"load_5min,omitempty"`
	Load15Min    *float64      `json:"load_15min,omitempty"`
	TopConsumers []CpuConsumer `json:"top_consumers"`
}

type CpuConsumer struct {
	CpuPercent float64 `json:"cpu_percent"`
	PID        int     `json:"pid"`
	Process    string  `json:"process"`
	Details    string  `json:"details"`
}

type Network struct {
	SSID           *string  `json:"ssid,omitempty"`
	RSSI           *int     `json:"rssi,omitempty"`
	LinkSpeedMbps  *int     `json:"link_speed_mbps,omitempty"`
	FrequencyMHz   *int     `json:"frequency_mhz,omitempty"`
	Band           string   `json:"band,omitempty"`
	SignalQuality  string   `json:"signal_quality,omitempty"`
	IPAddress      *string  `json:"ip_address,omitempty"`
	SubnetMask     *string  `json:"subnet_mask,omitempty"`
	IPv6Address    *string  `json:"ipv6_address,omitempty"`
	DNS            []string `json:"dns"`
	ConnectionType string   `json:"connection_type"`
}

type Apps struct {
	TotalPackages   int      `json:"total_packages"`
	ThirdPartyCount int      `json:"third_party_count"`
	SystemCount     int      `json:"system_count"`
	ThirdPartyApps  []string `json:"third_party_apps"`
}

type ErrorLog struct {
	TotalErrors  int      `json:"total_errors"`
	RecentErrors []string `json:"recent_errors"`
}

// NetworkDiagnostics is the optional extended network section produced by
// the netdiag package.
type NetworkDiagnostics struct {
	ConnectionType string              `json:"connection_type"`
	Wifi           WifiDetails         `json:"wifi"`
	DeviceIP       *string             `json:"device_ip,omitempty"`
	Gateway        *string             `json:"gateway,omitempty"`
	Ping           *PingStats          `json:"ping,omitempty"`
	DNSTests       map[string]DNSProbe `json:"dns_tests"`
}

type WifiDetails struct {
	SSID          *string `json:"ssid,omitempty"`
	SecurityType  *int    `json:"security_type,omitempty"`
	SecurityName  string  `json:"security_name,omitempty"`
	WifiStandard  *int    `json:"wifi_standard,omitempty"`
	StandardName  string  `json:"wifi_standard_name,omitempty"`
	RSSI          *int    `json:"rssi,omitempty"`
	LinkSpeedMbps *int    `json:"link_speed_mbps,omitempty"`
	TxSpeedMbps   *int    `json:"tx_speed_mbps,omitempty"`
	RxSpeedMbps   *int    `json:"rx_speed_mbps,omitempty"`
	FrequencyMHz  *int    `json:"frequency_mhz,omitempty"`
	Band          string  `json:"band,omitempty"`
	SignalQuality string  `json:"signal_quality,omitempty"`
	SignalPercent *int    `json:"signal_percent,omitempty"`
}

type PingStats struct {
	PacketsSent     int     `json:"packets_sent"`
	PacketsReceived int     `json:"packets_received"`
	PacketLoss      float64 `json:"packet_loss"`
	RTTMinMs        float64 `json:"rtt_min_ms"`
	RTTAvgMs        float64 `json:"rtt_avg_ms"`
	RTTMaxMs        float64 `json:"rtt_max_ms"`
	RTTMdevMs       float64 `json:"rtt_mdev_ms"`
}

type DNSProbe struct {
	Resolved  bool     `json:"resolved"`
	IP        *string  `json:"ip,omitempty"`
	LatencyMs *float64 `json:"latency_ms,omitempty"`
}
