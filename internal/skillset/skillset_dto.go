package skillset

type SkillsetResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
