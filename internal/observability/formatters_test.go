package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/posesug/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSuggestion(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.SuggestionResult{
		PoseSuggestions: []types.PoseCandidate{
			{ID: "p001", Name: "倚墙侧身", Priority: types.IntPtr(1), Tips: []string{"肩膀放松", "重心放左脚", "下巴微收", "手扶墙"}},
			{ID: "p002", Name: "叉腰", Priority: types.IntPtr(2)},
		},
		CompositionGuide: types.CompositionGuide{Framing: "三分法", Angle: "平视", Background: "虚化", Symmetry: "左右平衡"},
		VoiceGuide:       "身体向左转一点",
	}

	p.PrintSuggestion(result)
	output := buf.String()

	assert.Contains(t, output, "POSE SUGGESTIONS")
	assert.Contains(t, output, "p001  倚墙侧身  (priority 1)")
	assert.Contains(t, output, "p002  叉腰  (priority 2)")
	assert.Contains(t, output, "肩膀放松")
	assert.Contains(t, output, "... and 1 more")
	assert.NotContains(t, output, "手扶墙")
	assert.Contains(t, output, "三分法")
	assert.Contains(t, output, "身体向左转一点")
}

func TestPrintSuggestion_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestion(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSelectedPose(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSelectedPose(types.PoseCandidate{ID: "p003"}, "整体姿势名称：叉腰\n头部：正对镜头")
	output := buf.String()

	assert.Contains(t, output, "SELECTED POSE p003")
	assert.Contains(t, output, "整体姿势名称：叉腰")
	assert.Contains(t, output, "头部：正对镜头")
}

func TestPrintDiagram(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDiagram("https://example.com/pose.png")
	assert.Equal(t, "Diagram: https://example.com/pose.png\n", buf.String())
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("姿", boxWidth*2)
	p.printBox("T", long)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[3], "... │"))
	assert.True(t, strings.Contains(lines[3], "姿"))
}
