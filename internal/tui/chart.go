package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agridesk/internal/tui/theme"
	"agridesk/internal/types"
)

const chartLabelWidth = 16

// chartHeight is the number of lines BarChart will take for n records
func chartHeight(n int) int {
	if n == 0 {
		return 0
	}
	return n + 2 // one bar per record plus title and spacing
}

// BarChart renders a horizontal bar per record, scaled to the largest
// value. Records without a numeric value for valueKey are skipped.
func BarChart(title string, records []types.Record, labelKey, valueKey string, width int) string {
	type bar struct {
		label string
		value float64
	}

	var bars []bar
	var maxVal float64
	for _, rec := range records {
		label, _ := rec.Get(labelKey)
		raw, ok := rec.Get(valueKey)
		if !ok {
			continue
		}
		v, ok := asFloat(raw)
		if !ok {
			continue
		}
		bars = append(bars, bar{label: types.FormatScalar(label), value: v})
		if v > maxVal {
			maxVal = v
		}
	}
	if len(bars) == 0 {
		return ""
	}

	barBudget := width - chartLabelWidth - 12
	if barBudget < 10 {
		barBudget = 10
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))
	labelStyle := mutedStyle().Width(chartLabelWidth)

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Primary)).Render(title))
	sb.WriteString("\n")
	for _, b := range bars {
		length := 1
		if maxVal > 0 {
			length = int(b.value / maxVal * float64(barBudget))
			if length < 1 {
				length = 1
			}
		}
		sb.WriteString(labelStyle.Render(truncate(b.label, chartLabelWidth)))
		sb.WriteString(" ")
		sb.WriteString(barStyle.Render(strings.Repeat("█", length)))
		sb.WriteString(fmt.Sprintf(" %s", types.FormatScalar(b.value)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func asFloat(v types.Scalar) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
