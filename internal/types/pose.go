// Package types provides type definitions for structured data used throughout the pose suggestion service.
package types

// PoseDetails describes a pose per body part. Fields are pointers so that a part the model
// omitted is distinguishable from one it described with an empty string. Field order is the
// canonical body-part order and is preserved when the struct is serialized.
type PoseDetails struct {
	Head        *string `json:"head,omitempty"`
	Face        *string `json:"face,omitempty"`
	Arms        *string `json:"arms,omitempty"`
	Hands       *string `json:"hands,omitempty"`
	Torso       *string `json:"torso,omitempty"`
	Hips        *string `json:"hips,omitempty"`
	Legs        *string `json:"legs,omitempty"`
	Feet        *string `json:"feet,omitempty"`
	Orientation *string `json:"orientation,omitempty"`
}

// BodyPart identifies one key of PoseDetails.
type BodyPart string

// Body part keys in canonical rendering order.
const (
	PartHead        BodyPart = "head"
	PartFace        BodyPart = "face"
	PartArms        BodyPart = "arms"
	PartHands       BodyPart = "hands"
	PartTorso       BodyPart = "torso"
	PartHips        BodyPart = "hips"
	PartLegs        BodyPart = "legs"
	PartFeet        BodyPart = "feet"
	PartOrientation BodyPart = "orientation"
)

// CanonicalBodyParts lists every body part in the order descriptions are rendered.
var CanonicalBodyParts = []BodyPart{
	PartHead, PartFace, PartArms, PartHands, PartTorso, PartHips, PartLegs, PartFeet, PartOrientation,
}

// Get returns the description for a body part and whether it is present.
func (d *PoseDetails) Get(part BodyPart) (string, bool) {
	if d == nil {
		return "", false
	}
	var v *string
	switch part {
	case PartHead:
		v = d.Head
	case PartFace:
		v = d.Face
	case PartArms:
		v = d.Arms
	case PartHands:
		v = d.Hands
	case PartTorso:
		v = d.Torso
	case PartHips:
		v = d.Hips
	case PartLegs:
		v = d.Legs
	case PartFeet:
		v = d.Feet
	case PartOrientation:
		v = d.Orientation
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// PoseCandidate is one proposed pose. Priority is a pointer because a missing priority is an
// error, not an implicit zero.
type PoseCandidate struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Priority *int         `json:"priority,omitempty"`
	Details  *PoseDetails `json:"details,omitempty"`
	Tips     []string     `json:"tips,omitempty"`
}

// CompositionGuide carries framing advice that accompanies the poses.
type CompositionGuide struct {
	Framing    string `json:"framing"`
	Angle      string `json:"angle"`
	Background string `json:"background"`
	Symmetry   string `json:"symmetry"`
}

// SuggestionResult is the full structured answer of the vision-language model.
type SuggestionResult struct {
	PoseSuggestions  []PoseCandidate  `json:"poseSuggestions"`
	CompositionGuide CompositionGuide `json:"compositionGuide"`
	VoiceGuide       string           `json:"voiceGuide"`
}

// PosesugResponse is the body returned by POST /posesug.
type PosesugResponse struct {
	SessionID       string          `json:"sessionId"`
	PoseImageURL    string          `json:"poseImageUrl"`
	GuideText       string          `json:"guideText"`
	VoiceAudioText  string          `json:"voiceAudioText"`
	PoseSuggestions []PoseCandidate `json:"poseSuggestions"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string {
	return &v
}
