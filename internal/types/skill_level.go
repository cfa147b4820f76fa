// Package types provides type definitions for structured data used throughout the skill gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkillLevel is an ordered proficiency level. Higher values indicate more proficiency.
type SkillLevel int

// Skill proficiency levels, ordered beginner < intermediate < advanced < expert.
const (
	LevelBeginner SkillLevel = iota + 1
	LevelIntermediate
	LevelAdvanced
	LevelExpert
)

var levelNames = map[SkillLevel]string{
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelAdvanced:     "advanced",
	LevelExpert:       "expert",
}

// String returns the lowercase name of the level, or "unknown" for out-of-range values.
func (l SkillLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether the level is one of the four defined levels.
func (l SkillLevel) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseSkillLevel parses a level name (case-insensitive) into a SkillLevel.
func ParseSkillLevel(s string) (SkillLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for level, name := range levelNames {
		if name == normalized {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown skill level %q (expected beginner, intermediate, advanced, or expert)", s)
}

// MarshalJSON encodes the level as its lowercase name.
func (l SkillLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid skill level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its name or its numeric value.
func (l *SkillLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, perr := ParseSkillLevel(name)
		if perr != nil {
			return perr
		}
		*l = parsed
		return nil
	}

	var num int
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("skill level must be a string or integer: %w", err)
	}
	level := SkillLevel(num)
	if !level.Valid() {
		return fmt.Errorf("skill level %d out of range [1,4]", num)
	}
	*l = level
	return nil
}
