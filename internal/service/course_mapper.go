package service

import (
	"strings"

	"github.com/BBrav0/CanvasToNotion/internal/config"
)

// CourseMapper translates Canvas course names into the select labels used
// by the Notion database. The table is deployment configuration, not logic:
// it comes from config.yaml and is matched in order, first keyword wins.
type CourseMapper struct {
	mappings []config.CourseMapping
}

func NewCourseMapper(mappings []config.CourseMapping) *CourseMapper {
	return &CourseMapper{mappings: mappings}
}

// Normalize returns the configured label for the first keyword contained in
// the course name, comparing case-insensitively. Names that match nothing
// pass through unchanged, so Notion gets a new select option instead of a
// dropped row.
func (m *CourseMapper) Normalize(courseName string) string {
	lower := strings.ToLower(courseName)
	for _, mapping := range m.mappings {
		if strings.Contains(lower, strings.ToLower(mapping.Keyword)) {
			return mapping.Label
		}
	}
	return courseName
}
