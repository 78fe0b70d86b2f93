package pose

import (
	"errors"
	"testing"

	"github.com/jonathan/posesug/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id string, priority int) types.PoseCandidate {
	return types.PoseCandidate{ID: id, Name: "pose " + id, Priority: types.IntPtr(priority)}
}

func TestSelectHighestPriority(t *testing.T) {
	tests := []struct {
		name       string
		candidates []types.PoseCandidate
		expectedID string
	}{
		{
			name:       "single candidate",
			candidates: []types.PoseCandidate{candidate("a", 5)},
			expectedID: "a",
		},
		{
			name:       "lowest value wins",
			candidates: []types.PoseCandidate{candidate("a", 2), candidate("b", 1), candidate("c", 3)},
			expectedID: "b",
		},
		{
			name:       "tie keeps earliest",
			candidates: []types.PoseCandidate{candidate("a", 2), candidate("b", 1), candidate("c", 1)},
			expectedID: "b",
		},
		{
			name:       "non contiguous priorities",
			candidates: []types.PoseCandidate{candidate("a", 40), candidate("b", 7), candidate("c", 99)},
			expectedID: "b",
		},
		{
			name:       "zero and negative priorities",
			candidates: []types.PoseCandidate{candidate("a", 0), candidate("b", -3)},
			expectedID: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := SelectHighestPriority(tt.candidates)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, selected.ID)
		})
	}
}

func TestSelectHighestPriority_Empty(t *testing.T) {
	_, err := SelectHighestPriority(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = SelectHighestPriority([]types.PoseCandidate{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSelectHighestPriority_MissingPriority(t *testing.T) {
	candidates := []types.PoseCandidate{
		candidate("a", 1),
		{ID: "b", Name: "no priority"},
		candidate("c", 3),
	}

	_, err := SelectHighestPriority(candidates)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, "priority", missing.Field)
}

func TestSortByPriority_StableAndPure(t *testing.T) {
	candidates := []types.PoseCandidate{
		candidate("a", 3),
		candidate("b", 1),
		candidate("c", 2),
		candidate("d", 1),
	}

	sorted, err := SortByPriority(candidates)
	require.NoError(t, err)

	var ids []string
	for _, c := range sorted {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids)

	// input order untouched
	assert.Equal(t, "a", candidates[0].ID)
	assert.Equal(t, "d", candidates[3].ID)
}

func TestSortByPriority_Deterministic(t *testing.T) {
	candidates := []types.PoseCandidate{candidate("a", 2), candidate("b", 2), candidate("c", 2)}

	first, err := SortByPriority(candidates)
	require.NoError(t, err)
	second, err := SortByPriority(candidates)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "a", first[0].ID)
}
