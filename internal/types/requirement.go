package types

import (
	"github.com/go-playground/validator/v10"
)

// Importance classifies how much a requirement matters for the role.
type Importance string

// Requirement importance levels.
const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// PriorityWeight returns the importance contribution to gap priority.
func (i Importance) PriorityWeight() int {
	switch i {
	case ImportanceCritical:
		return 5
	case ImportanceImportant:
		return 3
	default:
		return 1
	}
}

// MatchWeight returns the weight a requirement carries in the overall match percentage.
func (i Importance) MatchWeight() int {
	switch i {
	case ImportanceCritical:
		return 3
	case ImportanceImportant:
		return 2
	default:
		return 1
	}
}

// rank orders importance levels so duplicate requirements can merge by max importance.
func (i Importance) rank() int {
	return i.PriorityWeight()
}

// Max returns the more important of the two levels.
func (i Importance) Max(other Importance) Importance {
	if other.rank() > i.rank() {
		return other
	}
	return i
}

// SkillRequirement is one skill a job or project requires, as supplied by the
// external requirement extractor.
type SkillRequirement struct {
	Skill        string     `json:"skill" validate:"required,min=1"`
	Category     string     `json:"category,omitempty"`
	Importance   Importance `json:"importance" validate:"required,oneof=critical important nice-to-have"`
	MinimumLevel SkillLevel `json:"minimum_level" validate:"required,min=1,max=4"`
	Confidence   float64    `json:"confidence" validate:"gte=0,lte=1"`
	Context      string     `json:"context,omitempty"`
}

// Validate validates the SkillRequirement using the validator.
func (r *SkillRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
