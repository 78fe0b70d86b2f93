package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoseDetails_Get(t *testing.T) {
	details := &PoseDetails{
		Head: StringPtr("head tilted right"),
		Feet: StringPtr(""),
	}

	v, ok := details.Get(PartHead)
	assert.True(t, ok)
	assert.Equal(t, "head tilted right", v)

	v, ok = details.Get(PartFeet)
	assert.True(t, ok, "an empty description is still present")
	assert.Equal(t, "", v)

	_, ok = details.Get(PartHips)
	assert.False(t, ok)

	_, ok = details.Get(BodyPart("tail"))
	assert.False(t, ok)
}

func TestPoseDetails_GetNil(t *testing.T) {
	var details *PoseDetails
	_, ok := details.Get(PartHead)
	assert.False(t, ok)
}

func TestPoseCandidate_UnmarshalMissingPriority(t *testing.T) {
	var c PoseCandidate
	err := json.Unmarshal([]byte(`{"id":"p1","name":"lean","tips":["a"]}`), &c)
	require.NoError(t, err)
	assert.Nil(t, c.Priority)

	err = json.Unmarshal([]byte(`{"id":"p1","name":"lean","priority":0}`), &c)
	require.NoError(t, err)
	require.NotNil(t, c.Priority)
	assert.Equal(t, 0, *c.Priority)
}

func TestPoseDetails_CanonicalOrderOnMarshal(t *testing.T) {
	var details PoseDetails
	err := json.Unmarshal([]byte(`{"orientation":"front","legs":"straight","head":"up","wings":"none"}`), &details)
	require.NoError(t, err)

	data, err := json.Marshal(details)
	require.NoError(t, err)
	assert.Equal(t, `{"head":"up","legs":"straight","orientation":"front"}`, string(data))
}

func TestCanonicalBodyParts(t *testing.T) {
	assert.Equal(t, []BodyPart{
		"head", "face", "arms", "hands", "torso", "hips", "legs", "feet", "orientation",
	}, CanonicalBodyParts)
}
