package config

import "fmt"

// Sensitivity represents a named joystick response preset.
type Sensitivity string

const (
	SensitivitySoft   Sensitivity = "soft"
	SensitivityNormal Sensitivity = "normal"
	SensitivityStiff  Sensitivity = "stiff"
	SensitivityFixed  Sensitivity = "fixed"
)

// DeadzoneForPreset returns the rest-band half-width for a preset, or 0 for
// presets that keep the configured thresholds.
func DeadzoneForPreset(preset Sensitivity) int {
	switch preset {
	case SensitivitySoft:
		return 600
	case SensitivityNormal:
		return 1000
	case SensitivityStiff:
		return 1400
	default:
		return 0
	}
}

// ParseSensitivity validates a preset name. The empty string means fixed.
func ParseSensitivity(s string) (Sensitivity, error) {
	switch p := Sensitivity(s); p {
	case "":
		return SensitivityFixed, nil
	case SensitivitySoft, SensitivityNormal, SensitivityStiff, SensitivityFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown sensitivity %q (want soft, normal, stiff or fixed)", s)
	}
}

// ApplySensitivity modifies the config based on a sensitivity preset.
// Non-fixed presets derive both thresholds from the nominal stick centre:
// low = centre - deadzone, high = centre + deadzone.
func ApplySensitivity(cfg *Config, preset Sensitivity) {
	deadzone := DeadzoneForPreset(preset)
	if deadzone == 0 {
		return
	}

	center := cfg.NominalCenter()
	cfg.Input.Deadzone = deadzone
	cfg.Input.ThresholdLow = center - deadzone
	cfg.Input.ThresholdHigh = center + deadzone
}
