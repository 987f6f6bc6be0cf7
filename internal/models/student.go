package models

// LessonType is the student-declared preference category that decides which
// assignment phase considers the request first.
type LessonType string

const (
	LessonTypeGroup           LessonType = "group"
	LessonTypePrivate         LessonType = "private"
	LessonTypeFlexibleGroup   LessonType = "flexible_group"
	LessonTypeFlexiblePrivate LessonType = "flexible_private"
)

// LessonTypes lists the accepted lesson type values.
var LessonTypes = []LessonType{
	LessonTypeGroup,
	LessonTypePrivate,
	LessonTypeFlexibleGroup,
	LessonTypeFlexiblePrivate,
}

// StudentRequest is one submitted lesson request. The name is unique within
// the registry; identity and lesson type never change after submission.
// Run-scoped bookkeeping (flexibility score, assigned lesson) lives in
// per-run tables, not on this struct.
type StudentRequest struct {
	Name         string       `json:"name"`
	LessonType   LessonType   `json:"lesson_type"`
	SwimStyles   []string     `json:"swim_style"`
	Availability []TimeWindow `json:"availability"`
}
