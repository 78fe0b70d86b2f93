package pose

import (
	"sort"

	"github.com/jonathan/posesug/internal/types"
)

// SortByPriority returns a copy of candidates ordered by ascending priority. Candidates with
// equal priority keep their original relative order. The input slice is not modified.
func SortByPriority(candidates []types.PoseCandidate) ([]types.PoseCandidate, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyInput
	}
	for i, c := range candidates {
		if c.Priority == nil {
			return nil, &MissingFieldError{Index: i, Field: "priority"}
		}
	}

	sorted := make([]types.PoseCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return *sorted[i].Priority < *sorted[j].Priority
	})
	return sorted, nil
}

// SelectHighestPriority returns the candidate with the smallest priority value, the earliest
// one on ties.
func SelectHighestPriority(candidates []types.PoseCandidate) (types.PoseCandidate, error) {
	sorted, err := SortByPriority(candidates)
	if err != nil {
		return types.PoseCandidate{}, err
	}
	return sorted[0], nil
}
