package forecast

import "strconv"

// Null entries are skipped by every aggregate; ok is false when nothing remains.

func mean(values []*float64) (float64, bool) {
	var (
		sum   float64
		count int
	)
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func maxOf(values []*float64) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, v := range values {
		if v == nil {
			continue
		}
		if !found || *v > best {
			best = *v
			found = true
		}
	}
	return best, found
}

func minOf(values []*float64) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, v := range values {
		if v == nil {
			continue
		}
		if !found || *v < best {
			best = *v
			found = true
		}
	}
	return best, found
}

// mode returns the most frequent value; ties go to the value seen first.
func mode(values []*float64) (float64, bool) {
	counts := make(map[float64]int, len(values))
	order := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		if _, seen := counts[*v]; !seen {
			order = append(order, *v)
		}
		counts[*v]++
	}
	if len(order) == 0 {
		return 0, false
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, true
}

// roundTo rounds to the given decimal places, half to even on the exact
// binary value.
func roundTo(v float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
