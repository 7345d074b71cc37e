package genetic

import (
	"gonum.org/v1/gonum/stat"
)

// calculateStats computes statistical measures for an evaluated pool
// BestIndex is the first index achieving the maximum score
func calculateStats[S any, F Numeric](candidates []Candidate[S, F]) PoolStats[F] {
	if len(candidates) == 0 {
		return PoolStats[F]{}
	}

	stats := PoolStats[F]{
		BestScore:  candidates[0].Score,
		WorstScore: candidates[0].Score,
		Size:       len(candidates),
	}

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		if c.Score > stats.BestScore {
			stats.BestScore = c.Score
			stats.BestIndex = i
		}
		if c.Score < stats.WorstScore {
			stats.WorstScore = c.Score
		}
		scores[i] = float64(c.Score)
	}

	stats.Mean, stats.StdDev = stat.PopMeanStdDev(scores, nil)

	return stats
}
