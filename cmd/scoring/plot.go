package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const maxBarWidth = 40

// plotScores draws one horizontal bar per alternative, best rank first.
func plotScores(w io.Writer, title string, alternatives []string, scores []float64, ranks []int) {
	order := make([]int, len(alternatives))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return ranks[order[a]] < ranks[order[b]]
	})

	nameWidth := len("Alternative")
	for _, name := range alternatives {
		nameWidth = max(nameWidth, len(name))
	}

	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "Rank | %-*s | Score | Bar\n", nameWidth, "Alternative")
	fmt.Fprintf(w, "-----|-%s-|-------|%s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", maxBarWidth+1))

	for _, i := range order {
		// scores are closeness coefficients in [0,1]
		barWidth := int(scores[i] * maxBarWidth)
		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}
		fmt.Fprintf(w, "%4d | %-*s | %.3f | %s\n", ranks[i], nameWidth, alternatives[i], scores[i], bar)
	}
}
