package vlr

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const similarityThreshold = 0.75

// NameResolver maps the abbreviated team tags that appear in per-map stat
// rows back to the full names extracted at the match level.
type NameResolver struct {
	fullByShort map[string]string
}

// NewNameResolver zips short tokens against full names by position, in
// document order. When the counts disagree the positional contract is
// broken, so each token instead goes to the most similar full name above a
// Jaro-Winkler threshold; tokens below it stay unmapped.
func NewNameResolver(short []string, full []string) NameResolver {
	mapping := make(map[string]string, len(short))

	if len(short) == len(full) {
		for i, s := range short {
			if s != "" && full[i] != "" {
				mapping[s] = full[i]
			}
		}
		return NameResolver{fullByShort: mapping}
	}

	for _, s := range short {
		if s == "" {
			continue
		}
		var best string
		var bestScore float64
		for _, f := range full {
			score := matchr.JaroWinkler(strings.ToLower(s), strings.ToLower(f), false)
			if score > bestScore {
				bestScore = score
				best = f
			}
		}
		if bestScore >= similarityThreshold {
			mapping[s] = best
		}
	}
	return NameResolver{fullByShort: mapping}
}

// Full returns the full name for a short tag, or the tag unchanged when no
// mapping exists. Pass-through is graceful degradation, not an error.
func (r NameResolver) Full(short string) string {
	if full, ok := r.fullByShort[short]; ok {
		return full
	}
	return short
}
