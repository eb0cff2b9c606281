package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		dim   bool
	}{
		{"0% normal", 0.0, 10, false},
		{"50% normal", 0.5, 10, false},
		{"100% normal", 1.0, 10, false},
		{"50% dimmed", 0.5, 10, true},
		{"over 100% clamps", 1.5, 10, false},
		{"negative clamps", -0.5, 10, false},
		{"tiny width clamps to 2", 0.5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotEmpty(t, got)
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderCompactBar_Blocks(t *testing.T) {
	assert.Equal(t, strings.Repeat(emptyBlock, 4), RenderCompactBar(0, 4, true))
	assert.Equal(t, strings.Repeat(filledBlock, 4), RenderCompactBar(1, 4, true))
	assert.Equal(t, "██░░", RenderCompactBar(0.5, 4, true))
}

func TestRenderBudgetBar_FifteenPercentFills(t *testing.T) {
	full := stripANSI(RenderBudgetBar(15, 10))
	assert.Equal(t, strings.Repeat(filledBlock, 10), full)

	over := stripANSI(RenderBudgetBar(22, 10))
	assert.Equal(t, full, over)

	partial := stripANSI(RenderBudgetBar(6, 10))
	assert.Equal(t, 4, strings.Count(partial, filledBlock))
}

func TestRenderProgress(t *testing.T) {
	got := stripANSI(RenderProgress(0.5, 10))
	assert.Equal(t, "[█████░░░░░]  50%", got)

	assert.Contains(t, stripANSI(RenderProgress(2, 4)), "100%")
}
