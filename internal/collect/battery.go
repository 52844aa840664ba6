package collect

import "regexp"

var batteryPatterns = map[string]*regexp.Regexp{
	"level":            regexp.MustCompile(`level:\s*(\d+)`),
	"scale":            regexp.MustCompile(`scale:\s*(\d+)`),
	"voltage":          regexp.MustCompile(`voltage:\s*(\d+)`),
	"temperature":      regexp.MustCompile(`temperature:\s*(\d+)`),
	"technology":       regexp.MustCompile(`technology:\s*(.+)`),
	"status":           regexp.MustCompile(`status:\s*(\d+)`),
	"health":           regexp.MustCompile(`health:\s*(\d+)`),
	"ac_powered":       regexp.MustCompile(`AC powered:\s*(\w+)`),
	"usb_powered":      regexp.MustCompile(`USB powered:\s*(\w+)`),
	"wireless_powered": regexp.MustCompile(`Wireless powered:\s*(\w+)`),
	"present":          regexp.MustCompile(`present:\s*(\w+)`),
}

// Status and health code tables from the Android BatteryManager constants.
// Codes outside the table resolve to "Unknown".
var (
	batteryStatusNames = map[int]string{
		1: "Unknown",
		2: "Charging",
		3: "Discharging",
		4: "Not Charging",
		5: "Full",
	}
	batteryHealthNames = map[int]string{
		1: "Unknown",
		2: "Good",
		3: "Overheat",
		4: "Dead",
		5: "Over Voltage",
		6: "Failure",
		7: "Cold",
	}
)

// ExtractBattery parses `dumpsys battery` output. Temperature is reported
// in tenths of a degree and converted to Celsius only when present.
func ExtractBattery(out string) Battery {
	f := ExtractFields(out, batteryPatterns)

	b := Battery{
		Level:           f.Int("level"),
		Scale:           f.Int("scale"),
		Voltage:         f.Int("voltage"),
		Temperature:     f.Int("temperature"),
		Technology:      f.Str("technology"),
		Status:          f.Int("status"),
		Health:          f.Int("health"),
		ACPowered:       f.Bool("ac_powered"),
		USBPowered:      f.Bool("usb_powered"),
		WirelessPowered: f.Bool("wireless_powered"),
		Present:         f.Bool("present"),
	}

	if b.Temperature != nil {
		celsius := float64(*b.Temperature) / 10
		b.TemperatureC = &celsius
	}
	if b.Status != nil {
		b.StatusText = lookupCode(batteryStatusNames, *b.Status)
	}
	if b.Health != nil {
		b.HealthText = lookupCode(batteryHealthNames, *b.Health)
	}
	b.PowerSource = powerSource(b)

	return b
}

func lookupCode(table map[int]string, code int) string {
	if name, ok := table[code]; ok {
		return name
	}

	return "Unknown"
}

func powerSource(b Battery) string {
	switch {
	case b.ACPowered != nil && *b.ACPowered:
		return "AC"
	case b.USBPowered != nil && *b.USBPowered:
		return "USB"
	case b.WirelessPowered != nil && *b.WirelessPowered:
		return "Wireless"
	}

	return "Battery"
}
