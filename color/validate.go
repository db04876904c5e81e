package color

import "math"

const (
	maxChannel = 255
	maxPercent = 100
	fullTurn   = 360
)

func validateChannel(v int, name string) (int, error) {
	if v < 0 || v > maxChannel {
		return 0, channelRangeError(name, v)
	}
	return v, nil
}

func validateAlpha(a float64) (float64, error) {
	if math.IsNaN(a) || a < 0 || a > 1 {
		return 0, alphaRangeError(a)
	}
	return a, nil
}

// validateChannelPercent checks saturation and lightness.
func validateChannelPercent(p int, name string) (int, error) {
	if p < 0 || p > maxPercent {
		return 0, channelRangeError(name, p)
	}
	return p, nil
}

// ValidatePercent checks a percentage argument such as the amount passed to a manipulator.
func ValidatePercent(p int) (int, error) {
	if p < 0 || p > maxPercent {
		return 0, &MalformedColorError{Cause: CausePercentRange, Channel: "percent", Value: float64(p)}
	}
	return p, nil
}

// NormalizeHue maps any integer onto [0, 360).
func NormalizeHue(h int) int {
	return ((h % fullTurn) + fullTurn) % fullTurn
}
