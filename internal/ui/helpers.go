package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/airvista/vista/internal/catalog"
)

// formatAmount renders an integer amount with thousands separators and the
// currency code, e.g. 125000 PKR -> "PKR 125,000".
func formatAmount(amount int, currency string) string {
	return currency + " " + groupDigits(amount)
}

func groupDigits(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead == 0 {
			lead = 3
		}
		b.WriteString(s[:lead])
		for i := lead; i < len(s); i += 3 {
			b.WriteByte(',')
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// airlineBadge renders a two-letter initials chip colored with the
// carrier's brand color, standing in for the site's airline logos.
func airlineBadge(name string) string {
	color := "#64748B"
	if a := catalog.AirlineByName(name); a != nil {
		color = a.Color
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Render(" " + airlineInitials(name) + " ")
}

// airlineInitials derives up to two initials from the carrier name, so
// "Emirates" becomes "E" and "Qatar Airways" becomes "QA".
func airlineInitials(name string) string {
	var initials []byte
	for _, word := range strings.Fields(name) {
		initials = append(initials, word[0])
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "??"
	}
	return strings.ToUpper(string(initials))
}

// truncate shortens s to at most width cells, appending an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// checkbox renders a toggle row.
func checkbox(label string, checked bool) string {
	if checked {
		return "[x] " + label
	}
	return "[ ] " + label
}

// stopsLabel describes a flight's stop count.
func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Direct"
	case 1:
		return "1 stop"
	default:
		return strconv.Itoa(stops) + " stops"
	}
}

// plural appends "s" for counts other than one.
func plural(n int, noun string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
