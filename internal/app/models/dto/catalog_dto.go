package dto

// IndustryResponse is one catalog industry
type IndustryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SkillResponse is one catalog skill
type SkillResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
