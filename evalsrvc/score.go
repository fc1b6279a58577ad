package evalsrvc

import "math"

// OverallScore derives the 0..100 total from the problem breakdown:
// round(100 * sum(score) / sum(max_score)). An empty breakdown, or one
// where every max score is zero, yields 0.
func OverallScore(problems []Problem) int {
	sum := 0
	max := 0
	for _, p := range problems {
		sum += p.Score
		max += p.MaxScore
	}
	if max == 0 {
		return 0
	}
	return int(math.Round(100 * float64(sum) / float64(max)))
}
