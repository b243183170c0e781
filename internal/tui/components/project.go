package components

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/hito/internal/models"
)

type ProjectCardProps struct {
	Project  *models.Project
	Selected bool
	Width    int
}

// RenderProjectCard renders a dashboard entry
//
//	╭──────────────────────────────╮
//	│ {Name}              [Status] │
//	│ {description preview}        │
//	╰──────────────────────────────╯
func RenderProjectCard(props ProjectCardProps) string {
	p := props.Project
	inner := max(props.Width-4, 10)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(p.Name))
	b.WriteString("  ")
	b.WriteString(ProjectStatusBadge(p.Status))

	if preview := p.DescriptionPreview(); preview != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(wordwrap.String(preview, inner)))
	}
	if !p.CreatedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("Created " + p.CreatedAt.Display()))
	}

	style := CardStyle
	if props.Selected {
		style = SelectedCardStyle
	}
	return style.Width(props.Width).Render(b.String())
}
