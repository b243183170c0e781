package models

// Project is the top-level organizational unit. It belongs to the tenant of
// the user that created it.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	TenantID    string        `json:"tenant_id,omitempty"`
	CreatedAt   Timestamp     `json:"created_at"`
	Tasks       []*Task       `json:"tasks,omitempty"`
}

// DescriptionPreviewLength is how many characters of a project description
// the dashboard shows before truncating.
const DescriptionPreviewLength = 100

// DescriptionPreview returns the description cut to DescriptionPreviewLength
// characters with an ellipsis appended when it had to be cut.
func (p *Project) DescriptionPreview() string {
	runes := []rune(p.Description)
	if len(runes) <= DescriptionPreviewLength {
		return p.Description
	}
	return string(runes[:DescriptionPreviewLength]) + "..."
}

// HasID reports whether the server assigned an identifier to the project.
func (p *Project) HasID() bool {
	return p != nil && p.ID != ""
}
