package pose

import (
	"strings"

	"github.com/jonathan/posesug/internal/types"
)

// Labels is the wording used to render a pose description.
type Labels struct {
	NamePrefix    string
	PartSeparator string
	Parts         map[types.BodyPart]string
	TipsPrefix    string
	TipsSeparator string
}

// Locales with a built-in label set.
const (
	LocaleZH = "zh"
	LocaleEN = "en"
)

// ChineseLabels is the default label set.
var ChineseLabels = Labels{
	NamePrefix:    "整体姿势名称：",
	PartSeparator: "：",
	Parts: map[types.BodyPart]string{
		types.PartHead:        "头部",
		types.PartFace:        "面部/目光",
		types.PartArms:        "双臂",
		types.PartHands:       "双手",
		types.PartTorso:       "躯干/上身",
		types.PartHips:        "髋部",
		types.PartLegs:        "腿部",
		types.PartFeet:        "双脚",
		types.PartOrientation: "整体朝向/视角",
	},
	TipsPrefix:    "额外动作提示：",
	TipsSeparator: "；",
}

// EnglishLabels renders descriptions in English.
var EnglishLabels = Labels{
	NamePrefix:    "Overall pose name: ",
	PartSeparator: ": ",
	Parts: map[types.BodyPart]string{
		types.PartHead:        "Head",
		types.PartFace:        "Face/gaze",
		types.PartArms:        "Arms",
		types.PartHands:       "Hands",
		types.PartTorso:       "Torso/upper body",
		types.PartHips:        "Hips",
		types.PartLegs:        "Legs",
		types.PartFeet:        "Feet",
		types.PartOrientation: "Overall orientation/view",
	},
	TipsPrefix:    "Extra tips: ",
	TipsSeparator: "; ",
}

// NormalizeLocale maps a locale setting to LocaleEN or LocaleZH, the default.
func NormalizeLocale(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if l == LocaleEN || strings.HasPrefix(l, "en-") || strings.HasPrefix(l, "en_") {
		return LocaleEN
	}
	return LocaleZH
}

// LabelsFor returns the label set for locale.
func LabelsFor(locale string) Labels {
	if NormalizeLocale(locale) == LocaleEN {
		return EnglishLabels
	}
	return ChineseLabels
}

// RenderDescription renders a candidate with the default label set.
func RenderDescription(c types.PoseCandidate) string {
	return RenderDescriptionWith(c, ChineseLabels)
}

// RenderDescriptionWith renders the name line, one line per present body part in canonical
// order, and the tips line, joined by newlines.
func RenderDescriptionWith(c types.PoseCandidate, labels Labels) string {
	var lines []string

	if c.Name != "" {
		lines = append(lines, labels.NamePrefix+c.Name)
	}

	for _, part := range types.CanonicalBodyParts {
		value, ok := c.Details.Get(part)
		if !ok {
			continue
		}
		label, ok := labels.Parts[part]
		if !ok {
			label = string(part)
		}
		lines = append(lines, label+labels.PartSeparator+value)
	}

	if len(c.Tips) > 0 {
		lines = append(lines, labels.TipsPrefix+strings.Join(c.Tips, labels.TipsSeparator))
	}

	return strings.Join(lines, "\n")
}
