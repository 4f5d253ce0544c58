package scheduling

import "math"

// Band summarizes a series for the 2σ rule.
type Band struct {
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Threshold float64 `json:"threshold"`
}

// NewBand computes mean and population standard deviation. Series shorter than two
// values get a zero deviation.
func NewBand(series []float64) Band {
	n := len(series)
	if n == 0 {
		return Band{}
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(n)

	var sd float64
	if n >= 2 {
		var sq float64
		for _, v := range series {
			d := v - mean
			sq += d * d
		}
		sd = math.Sqrt(sq / float64(n))
	}
	return Band{Mean: mean, StdDev: sd, Threshold: mean + 2*sd}
}

// IsAnomaly reports whether v lies strictly above mean + 2σ. Upper tail only.
func (b Band) IsAnomaly(v float64) bool {
	return b.StdDev > 0 && v > b.Threshold
}

// Detect flags each value of series exceeding mean + 2σ of the series.
func Detect(series []float64) []bool {
	b := NewBand(series)
	out := make([]bool, len(series))
	for i, v := range series {
		out[i] = b.IsAnomaly(v)
	}
	return out
}
