package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// BudgetBarScale is the budget share that fills a budget bar completely.
const BudgetBarScale = 15

func clampBar(pct float64, width int) (float64, int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	return pct, width
}

func blocks(pct float64, width int) string {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct, width = clampBar(pct, width)
	bar := blocks(pct, width)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// RenderCompactBar renders a bracketless bar with no percentage text.
// dim draws the bar without color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, width = clampBar(pct, width)
	bar := blocks(pct, width)
	if dim {
		return bar
	}
	return StyleBlue.Render(bar)
}

// RenderBudgetBar draws a month's budget share against BudgetBarScale, so
// any month at or above 15% shows a full bar.
func RenderBudgetBar(budgetPct int, width int) string {
	return RenderCompactBar(float64(budgetPct)/BudgetBarScale, width, false)
}

// RenderAllocationBar draws one budget breakdown line against 100%.
func RenderAllocationBar(pct int, width int) string {
	return RenderCompactBar(float64(pct)/100, width, false)
}
