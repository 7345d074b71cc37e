package fitness

// NormalizeFunc converts a raw score to a 0-1 value
type NormalizeFunc func(raw float64) float64

// NormalizeLinear creates a clamped linear normalizer over [min, max]
func NormalizeLinear(min, max float64) NormalizeFunc {
	rangeVal := max - min
	if rangeVal <= 0 {
		return func(raw float64) float64 {
			if raw >= max {
				return 1
			}
			return 0
		}
	}
	return func(raw float64) float64 {
		v := (raw - min) / rangeVal
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
}
