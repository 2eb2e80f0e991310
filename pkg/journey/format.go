package journey

import (
	"fmt"
	"strings"
)

// FormatStyle selects the rendered output style for instructions.
type FormatStyle string

const (
	StyleDetailed   FormatStyle = "detailed"
	StyleSimple     FormatStyle = "simple"
	StyleNavigation FormatStyle = "navigation"
)

// ParseFormatStyle maps a user-supplied style name to a FormatStyle,
// defaulting to detailed.
func ParseFormatStyle(s string) FormatStyle {
	switch strings.ToLower(s) {
	case string(StyleSimple):
		return StyleSimple
	case string(StyleNavigation):
		return StyleNavigation
	default:
		return StyleDetailed
	}
}

// FormatInstructions renders instructions in the requested style, one line
// per instruction. Absent optional fields are simply omitted from the
// rendered string; formatting never fails.
func FormatInstructions(instructions []ParsedInstruction, style FormatStyle) []string {
	lines := make([]string, 0, len(instructions))

	for _, ins := range instructions {
		switch style {
		case StyleSimple:
			lines = append(lines, ins.Instruction)
		case StyleNavigation:
			lines = append(lines, formatNavigation(ins))
		default:
			lines = append(lines, formatDetailed(ins))
		}
	}

	return lines
}

func formatNavigation(ins ParsedInstruction) string {
	line := fmt.Sprintf("%d. %s", ins.Step, ins.Instruction)
	if ins.Distance > 0 {
		line += fmt.Sprintf(" (%.0fm)", ins.Distance)
	}
	return line
}

func formatDetailed(ins ParsedInstruction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d: %s", ins.Step, ins.Instruction)

	if ins.Duration > 0 {
		mins := int(ins.Duration) / 60
		secs := int(ins.Duration) % 60
		fmt.Fprintf(&b, " (%dmin %ds)", mins, secs)
	}
	if ins.Service != "" && ins.Operator != "" {
		fmt.Fprintf(&b, " [%s - %s]", ins.Service, ins.Operator)
	}
	if ins.EstimatedContext != nil && ins.EstimatedContext.Area != "" {
		fmt.Fprintf(&b, " - %s", ins.EstimatedContext.Area)
	}

	return b.String()
}
