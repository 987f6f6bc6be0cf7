package dto

// AssignedLessonRecord is one scheduled lesson in the run output. Fallback
// merges only ever grow the student list of an existing record.
type AssignedLessonRecord struct {
	LessonID   int      `json:"lesson_id"`
	LessonType string   `json:"lesson_type"`
	SwimStyle  string   `json:"swim_style"`
	Instructor *string  `json:"instructor"`
	Students   []string `json:"students"`
	Day        *string  `json:"day"`
	StartTime  *string  `json:"start_time"`
	EndTime    *string  `json:"end_time"`
}

// UnassignedLessonRecord is a best-effort fallback record: no instructor,
// day or time, and the swim style is a comma-joined list of what the
// student asked for.
type UnassignedLessonRecord struct {
	LessonID   int      `json:"lesson_id"`
	LessonType string   `json:"lesson_type"`
	SwimStyle  string   `json:"swim_style"`
	Students   []string `json:"students"`
}

// ScheduleResponse is the outcome of one scheduling run.
type ScheduleResponse struct {
	RunID             string                   `json:"run_id"`
	ElapsedMS         int64                    `json:"elapsed_ms"`
	AssignedLessons   []AssignedLessonRecord   `json:"assigned_lessons"`
	UnassignedLessons []UnassignedLessonRecord `json:"unassigned_lessons"`
}
