package match

import (
	"sort"
)

// DefaultThreshold is the lowest score Suggest reports.
const DefaultThreshold = 0.5

// Candidate is a declared name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every candidate name against name and returns them ordered by
// score (descending), then by name for determinism.
func Rank(name string, candidates []string) CandidateList {
	norm := NormalizeIdent(name)

	list := make(CandidateList, 0, len(candidates))
	for _, c := range candidates {
		list = append(list, Candidate{
			Name:  c,
			Score: LevenshteinNormalized(norm, NormalizeIdent(c)),
		})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to limit candidate names scoring at least DefaultThreshold
// against name, best first. A candidate equal to name is never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates).AboveThreshold(DefaultThreshold)

	others := make(CandidateList, 0, len(ranked))
	for _, c := range ranked {
		if c.Name != name {
			others = append(others, c)
		}
	}

	var out []string
	for _, c := range others.Top(limit) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (l CandidateList) Len() int { return len(l) }

// Less implements sort.Interface.
func (l CandidateList) Less(i, j int) bool {
	if l[i].Score != l[j].Score {
		return l[i].Score > l[j].Score
	}

	return l[i].Name < l[j].Name
}

// Swap implements sort.Interface.
func (l CandidateList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Top returns the first n candidates (or fewer when the list is shorter).
func (l CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(l) {
		return l
	}

	return l[:n]
}

// AboveThreshold keeps candidates scoring at least threshold.
func (l CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, c := range l {
		if c.Score >= threshold {
			out = append(out, c)
		}
	}

	return out
}
