package scoring

// Confidence formulas. Each instrument family keeps its own convention;
// they are deliberately not unified into one function.

// consistencyConfidence derives confidence from answer spread: for every
// dimension with at least two samples take the sample variance, average the
// variances, and map inversely and linearly into [0.5, 0.95]:
//
//	confidence = clamp(0.95 - avgVariance/10, 0.5, 0.95)
//
// Lower variance (more consistent answering) means higher confidence. The
// ceiling stays below 1: a self-report instrument never yields certainty.
// With no dimension holding two samples the flat default is 0.75.
func consistencyConfidence(samples map[string][]int) float64 {
	sum, n := 0.0, 0
	for _, s := range samples {
		if len(s) > 1 {
			sum += sampleVariance(s)
			n++
		}
	}
	if n == 0 {
		return 0.75
	}
	c := 0.95 - (sum/float64(n))/10
	if c < 0.5 {
		c = 0.5
	}
	if c > 0.95 {
		c = 0.95
	}
	return round2(c)
}

// clarityConfidence maps MBTI preference clarity into [0.5, 0.95]. Each
// pair contributes |a-b|/max(a+b, 1); the average clarity scales as
// 0.5 + clarity*0.4. Zero answered questions yields 0.
func clarityConfidence(pairs [][2]int, total int) float64 {
	if total == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range pairs {
		denom := p[0] + p[1]
		if denom < 1 {
			denom = 1
		}
		sum += abs(p[0]-p[1]) / float64(denom)
	}
	c := 0.5 + (sum/float64(len(pairs)))*0.4
	if c > 0.95 {
		c = 0.95
	}
	return c
}

// dominanceConfidence maps the dominant DISC style's share of all picks
// into [0.5, 0.9]: 0.6 + (ratio-0.25)*1.6, capped at 0.9. An empty
// submission is the 0.5 floor.
func dominanceConfidence(dominant, total int) float64 {
	if total == 0 {
		return 0.5
	}
	c := 0.6 + (float64(dominant)/float64(total)-0.25)*1.6
	if c > 0.9 {
		c = 0.9
	}
	return c
}

// separationConfidence maps the relative gap between the two best candidate
// scores into [0.5, 0.9]: 0.6 + (top-second)/top*0.3, capped at 0.9. A zero
// top score is degenerate and yields 0.5.
func separationConfidence(top, second int) float64 {
	if top <= 0 {
		return 0.5
	}
	c := 0.6 + float64(top-second)/float64(top)*0.3
	if c > 0.9 {
		c = 0.9
	}
	return c
}

// completenessConfidence drives Human Design confidence from how many of
// the three birth-data fields were supplied. The ceiling is 0.75: an
// entertainment-tier reading never reports evidence-tier confidence.
func completenessConfidence(fieldsPresent int) float64 {
	c := 0.4 + float64(fieldsPresent)/3*0.4
	if c > 0.75 {
		c = 0.75
	}
	return c
}

func abs(n int) float64 {
	if n < 0 {
		return float64(-n)
	}
	return float64(n)
}
