package scoring

import "math"

// collectLikert gathers post-reverse raw samples per dimension. Malformed
// answers and unknown question ids are skipped; partial input degrades
// confidence downstream, not availability.
func collectLikert(t DimensionTable, answers AnswerSet) map[string][]int {
	samples := make(map[string][]int, len(t.dims))
	for _, dim := range t.dims {
		samples[dim] = nil
	}
	for key, raw := range answers {
		id, ok := questionID(key)
		if !ok {
			continue
		}
		dim, reverse, ok := t.Lookup(id)
		if !ok {
			continue
		}
		v, ok := likertValue(raw)
		if !ok {
			continue
		}
		if reverse {
			v = 6 - v
		}
		samples[dim] = append(samples[dim], v)
	}
	return samples
}

// likertScores normalizes each dimension's samples onto 0-100. The returned
// map always covers every dimension of the table: a dimension with no
// answers defaults to the neutral midpoint 50.0.
func likertScores(t DimensionTable, samples map[string][]int) map[string]float64 {
	scores := make(map[string]float64, len(t.dims))
	for _, dim := range t.dims {
		scores[dim] = normalizeMean(samples[dim])
	}
	return scores
}

// normalizeMean maps the mean of 1-5 Likert samples onto 0-100:
// (mean-1)/4*100, one decimal. Empty input is the neutral 50.0.
func normalizeMean(samples []int) float64 {
	if len(samples) == 0 {
		return 50.0
	}
	return round1((mean(samples) - 1) / 4 * 100)
}

func mean(samples []int) float64 {
	sum := 0
	for _, v := range samples {
		sum += v
	}
	return float64(sum) / float64(len(samples))
}

// sampleVariance is the n-1 denominator variance; callers must pass at
// least two samples.
func sampleVariance(samples []int) float64 {
	m := mean(samples)
	ss := 0.0
	for _, v := range samples {
		d := float64(v) - m
		ss += d * d
	}
	return ss / float64(len(samples)-1)
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
