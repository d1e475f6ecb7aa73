package board

import (
	"fmt"
	"strings"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/ui/style"
)

const helpLine = "↑/↓ select · space toggle · s skip · K/J reorder · r reload · q quit"

// View renders the board.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", m.Day.Date.Weekday(), m.Day.Date)))
	b.WriteString("\n\n")

	if len(m.Day.Incomplete) == 0 && len(m.Day.Done) == 0 {
		b.WriteString(labelStyle.Render("  Nothing scheduled."))
		b.WriteString("\n")
	}

	idx := 0
	for _, e := range m.Day.Incomplete {
		b.WriteString(m.row(idx, e))
		idx++
	}
	if len(m.Day.Done) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("  Done"))
		b.WriteString("\n")
		for _, e := range m.Day.Done {
			b.WriteString(m.row(idx, e))
			idx++
		}
	}

	b.WriteString("\n")
	switch {
	case m.Err != nil:
		b.WriteString(errorStyle.Render(style.Failure + " " + m.Err.Error()))
		b.WriteString("\n")
	case m.Status != "":
		b.WriteString(statusStyle.Render(m.Status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) row(idx int, e domain.Entry) string {
	inst := e.Instance
	cursor := "  "
	name := e.Task.Name
	if idx == m.Cursor {
		cursor = style.Cursor + " "
		name = selectedStyle.Render(name)
	}
	if inst.CompletionOrder != nil {
		name = fmt.Sprintf("%d. %s", *inst.CompletionOrder, name)
	}

	line := cursor + statusGlyph(style.StatusGlyph(inst.Status), style.StatusColor(inst.Status)) + " " + name
	if label := style.SourceLabel(inst.Source); label != "" {
		line += "  " + labelStyle.Render(label)
	}
	return line + "\n"
}
