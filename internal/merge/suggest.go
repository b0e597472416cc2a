package merge

import "sort"

// suggest returns up to 3 candidates closest to raw by edit distance,
// grounded on the teacher's internal/link/module_linker.go
// suggestModules/suggestExports (a simple length/prefix heuristic over the
// set of names actually available) generalized to full Levenshtein
// distance since the candidate sets here are small.
func suggest(raw string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}
	scoredNames := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		scoredNames = append(scoredNames, scored{name: c, dist: editDistance(raw, c)})
	}
	sort.Slice(scoredNames, func(i, j int) bool {
		if scoredNames[i].dist != scoredNames[j].dist {
			return scoredNames[i].dist < scoredNames[j].dist
		}
		return scoredNames[i].name < scoredNames[j].name
	})

	const maxSuggestions = 3
	var out []string
	for _, s := range scoredNames {
		if s.dist > len(raw) {
			continue // too far to be a plausible typo
		}
		out = append(out, s.name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
