package topsis

import "sort"

// Rank turns scores into 1-based ranks, best score first. Equal scores keep
// their input order, so the earlier alternative gets the smaller rank.
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for position, alternative := range order {
		ranks[alternative] = position + 1
	}
	return ranks
}
