package components

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/hito/internal/models"
)

type TaskRowProps struct {
	Task     *models.Task
	Selected bool
	Expanded bool
	Width    int
}

// RenderTaskRow renders one entry of the project task list
//
//	╭──────────────────────────────────────╮
//	│ [Status] {Title}           @assignee │
//	│ {description, when expanded}         │
//	╰──────────────────────────────────────╯
func RenderTaskRow(props TaskRowProps) string {
	t := props.Task
	inner := max(props.Width-4, 10)

	assignee := "unassigned"
	if name := t.AssigneeName(); name != "" {
		assignee = "@" + name
	}
	assigneeView := SubtleStyle.Render(assignee)
	badgeView := TaskStatusBadge(t.Status)

	titleWidth := max(inner-len([]rune(t.Status.Label()))-len([]rune(assignee))-6, 5)
	title := truncate.StringWithTail(t.Title, uint(titleWidth), "...")

	var b strings.Builder
	b.WriteString(badgeView)
	b.WriteString(" ")
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(assigneeView)

	if props.Expanded {
		b.WriteString("\n\n")
		b.WriteString(RenderDescription(DescriptionProps{Description: t.Description, Width: inner}))
		if due := dueDate(t); due != "" {
			b.WriteString("\n")
			b.WriteString(SubtleStyle.Render("Due " + due))
		}
		if !t.CreatedAt.IsZero() {
			b.WriteString("\n")
			b.WriteString(SubtleStyle.Render("Created " + t.CreatedAt.Display()))
		}
	} else if t.Description != "" {
		first := strings.SplitN(strings.TrimSpace(t.Description), "\n", 2)[0]
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(truncate.StringWithTail(wordwrap.String(first, inner), uint(inner), "...")))
	}

	style := CardStyle
	if props.Selected {
		style = SelectedCardStyle
	}
	return style.Width(props.Width).Render(b.String())
}

func dueDate(t *models.Task) string {
	if t.DueDate == nil || t.DueDate.IsZero() {
		return ""
	}
	return t.DueDate.Display()
}
