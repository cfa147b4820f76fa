// Package types provides type definitions for structured data used throughout the skill gap analyzer.
package types

import (
	"github.com/go-playground/validator/v10"
)

// UserSkill represents one declared skill of a person. It is an immutable
// input owned by the caller; the analyzer never mutates it.
type UserSkill struct {
	SkillName       string     `json:"skill_name" validate:"required,min=1"`
	SkillCategory   string     `json:"skill_category,omitempty"`
	Level           SkillLevel `json:"level" validate:"required,min=1,max=4"`
	YearsExperience float64    `json:"years_experience" validate:"gte=0"`
	ConfidenceScore float64    `json:"confidence_score" validate:"gte=0,lte=1"`
	Certifications  []string   `json:"certifications,omitempty"`
}

// Validate validates the UserSkill using the validator.
func (s *UserSkill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// SkillMatch is the canonical identity a raw skill name resolves to.
type SkillMatch struct {
	CanonicalName string  `json:"canonical_name"`
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
}
