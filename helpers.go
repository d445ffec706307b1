package scheduler

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

func skillAt(levels []float64, k int) float64 {
	if k < 0 || k >= len(levels) {
		return 0
	}

	return levels[k]
}

// padded returns a copy of levels with length at least dimensions.
func padded(levels []float64, dimensions int) []float64 {
	result := make([]float64, max(dimensions, len(levels)))
	copy(result, levels)

	return result
}

func qualifies(skills, required []float64) bool {
	for k, level := range required {
		if level <= 0 {
			continue
		}

		if skillAt(skills, k) < level {
			return false
		}
	}

	return true
}

// overqualification sums alpha weighted excess skill over required dimensions only.
func overqualification(skills, required, alpha []float64) float64 {
	var result float64

	for k, level := range required {
		if level <= 0 {
			continue
		}

		if excess := skillAt(skills, k) - level; excess > 0 {
			result = result + skillAt(alpha, k)*excess
		}
	}

	return result
}

func overload(load, capacity int64) float64 {
	return float64(max(0, load-capacity))
}
