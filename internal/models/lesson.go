package models

// Lesson durations by lesson type.
const (
	GroupLessonMinutes   = 60
	PrivateLessonMinutes = 45
)

// Lesson is a concrete scheduling outcome. Scheduled lessons carry an
// instructor, day and time span; fallback records carry none of those and a
// comma-joined style list instead of a single style. IDs share one
// monotonically increasing counter within a run.
type Lesson struct {
	ID         int
	Type       LessonType
	SwimStyle  string
	Students   []string
	Instructor string
	Day        string
	StartTime  *ClockTime
	EndTime    *ClockTime
}

// Scheduled reports whether the lesson has a concrete day and time span.
func (l *Lesson) Scheduled() bool {
	return l.Day != "" && l.StartTime != nil && l.EndTime != nil
}

// AddStudent appends a student to the roster. Used only by the fallback
// merge, which is additive: group lessons never lose students or change
// instructor, day or time after creation.
func (l *Lesson) AddStudent(name string) {
	l.Students = append(l.Students, name)
}
