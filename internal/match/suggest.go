package match

import "sort"

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.5

// Suggestion is a candidate name with its similarity score.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest returns up to limit candidates whose similarity to name is at
// least threshold, best first. Ties keep candidate order.
func Suggest(name string, candidates []string, limit int, threshold float64) []Suggestion {
	var out []Suggestion

	for _, c := range candidates {
		if score := Similarity(name, c); score >= threshold {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Names returns the names of suggestions in order.
func Names(suggestions []Suggestion) []string {
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
	}

	return names
}
