package pose

import (
	"strings"
	"testing"

	"github.com/jonathan/posesug/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderDescription_CanonicalOrder(t *testing.T) {
	c := types.PoseCandidate{
		Name:     "正面抬手侧身",
		Priority: types.IntPtr(1),
		Details: &types.PoseDetails{
			Orientation: types.StringPtr("微侧身面向镜头"),
			Legs:        types.StringPtr("左腿承重"),
			Head:        types.StringPtr("头部右倾"),
			Arms:        types.StringPtr("右手抬起"),
		},
		Tips: []string{"身体微侧45度", "单手遮阳"},
	}

	expected := strings.Join([]string{
		"整体姿势名称：正面抬手侧身",
		"头部：头部右倾",
		"双臂：右手抬起",
		"腿部：左腿承重",
		"整体朝向/视角：微侧身面向镜头",
		"额外动作提示：身体微侧45度；单手遮阳",
	}, "\n")

	assert.Equal(t, expected, RenderDescription(c))
}

func TestRenderDescription_OptionalParts(t *testing.T) {
	c := types.PoseCandidate{
		Name: "叉腰",
		Details: &types.PoseDetails{
			Head:  types.StringPtr("正对镜头"),
			Face:  types.StringPtr("目光平视"),
			Hips:  types.StringPtr("髋部侧移"),
			Feet:  types.StringPtr("脚尖外八"),
			Torso: types.StringPtr("前倾"),
		},
	}

	lines := strings.Split(RenderDescription(c), "\n")
	assert.Equal(t, []string{
		"整体姿势名称：叉腰",
		"头部：正对镜头",
		"面部/目光：目光平视",
		"躯干/上身：前倾",
		"髋部：髋部侧移",
		"双脚：脚尖外八",
	}, lines)
}

func TestRenderDescription_NoTipsNoName(t *testing.T) {
	c := types.PoseCandidate{
		Details: &types.PoseDetails{Head: types.StringPtr("低头")},
		Tips:    []string{},
	}

	out := RenderDescription(c)
	assert.Equal(t, "头部：低头", out)
	assert.NotContains(t, out, "额外动作提示")
	assert.NotContains(t, out, "整体姿势名称")
}

func TestRenderDescription_NoDetails(t *testing.T) {
	c := types.PoseCandidate{Name: "站立", Tips: []string{"放松"}}
	assert.Equal(t, "整体姿势名称：站立\n额外动作提示：放松", RenderDescription(c))
}

func TestRenderDescription_Deterministic(t *testing.T) {
	c := types.PoseCandidate{
		Name:    "lean",
		Details: &types.PoseDetails{Head: types.StringPtr("up"), Feet: types.StringPtr("apart")},
		Tips:    []string{"a", "b"},
	}
	assert.Equal(t, RenderDescription(c), RenderDescription(c))
}

func TestRenderDescriptionWith_English(t *testing.T) {
	c := types.PoseCandidate{
		Name: "Lean on wall",
		Details: &types.PoseDetails{
			Head:        types.StringPtr("tilted left"),
			Hands:       types.StringPtr("in pockets"),
			Orientation: types.StringPtr("three-quarter view"),
		},
		Tips: []string{"relax shoulders", "shift weight"},
	}

	expected := strings.Join([]string{
		"Overall pose name: Lean on wall",
		"Head: tilted left",
		"Hands: in pockets",
		"Overall orientation/view: three-quarter view",
		"Extra tips: relax shoulders; shift weight",
	}, "\n")
	assert.Equal(t, expected, RenderDescriptionWith(c, EnglishLabels))
}

func TestLabelSetsShareLineStructure(t *testing.T) {
	c := types.PoseCandidate{
		Name: "x",
		Details: &types.PoseDetails{
			Head: types.StringPtr("h"), Face: types.StringPtr("f"), Arms: types.StringPtr("a"),
			Hands: types.StringPtr("h"), Torso: types.StringPtr("t"), Hips: types.StringPtr("h"),
			Legs: types.StringPtr("l"), Feet: types.StringPtr("f"), Orientation: types.StringPtr("o"),
		},
		Tips: []string{"t"},
	}

	zh := strings.Split(RenderDescriptionWith(c, ChineseLabels), "\n")
	en := strings.Split(RenderDescriptionWith(c, EnglishLabels), "\n")
	assert.Len(t, zh, 11)
	assert.Len(t, en, len(zh))
}

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{locale: "zh", expected: ChineseLabels.NamePrefix},
		{locale: "", expected: ChineseLabels.NamePrefix},
		{locale: "fr", expected: ChineseLabels.NamePrefix},
		{locale: "en", expected: EnglishLabels.NamePrefix},
		{locale: " EN ", expected: EnglishLabels.NamePrefix},
		{locale: "en-US", expected: EnglishLabels.NamePrefix},
		{locale: "english", expected: ChineseLabels.NamePrefix},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, LabelsFor(tt.locale).NamePrefix)
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, LocaleEN, NormalizeLocale("en_GB"))
	assert.Equal(t, LocaleZH, NormalizeLocale("zh-CN"))
	assert.Equal(t, LocaleZH, NormalizeLocale(""))
}
