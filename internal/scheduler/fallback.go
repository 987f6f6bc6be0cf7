package scheduler

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

// resolveFallback is the single closing pass over all students in
// submission order. Flexible-private students left over from the slot
// phases are merged into the first existing group lesson that teaches one
// of their styles and fits one of their windows; instructor capability is
// not re-checked on merge, the group's instructor is taken as valid.
// Everyone still unassigned becomes a singleton unassigned record carrying
// their lesson type and a comma-joined rendering of their requested styles,
// with no instructor, day or time.
func (r *Run) resolveFallback() {
	for _, student := range r.students {
		if r.assigned[student.Name] != nil {
			continue
		}

		if student.LessonType == models.LessonTypeFlexiblePrivate {
			for _, lesson := range r.lessons {
				if lesson.Type != models.LessonTypeGroup {
					continue
				}
				if !lo.Contains(student.SwimStyles, lesson.SwimStyle) {
					continue
				}
				if !r.fitsAvailability(student, lesson) {
					continue
				}
				lesson.AddStudent(student.Name)
				r.assigned[student.Name] = lesson
				r.logger.Debug("merged into group lesson",
					zap.String("student", student.Name),
					zap.Int("lesson_id", lesson.ID),
				)
				break
			}
		}

		if r.assigned[student.Name] == nil {
			lesson := &models.Lesson{
				ID:        len(r.lessons) + len(r.unassigned),
				Type:      student.LessonType,
				SwimStyle: strings.Join(student.SwimStyles, ", "),
				Students:  []string{student.Name},
			}
			r.unassigned = append(r.unassigned, lesson)
			r.assigned[student.Name] = lesson
		}
	}
}

// fitsAvailability reports whether the lesson's concrete day and span fit
// inside one of the student's windows.
func (r *Run) fitsAvailability(student *models.StudentRequest, lesson *models.Lesson) bool {
	if !lesson.Scheduled() {
		return false
	}
	return lo.SomeBy(student.Availability, func(w models.TimeWindow) bool {
		return w.Contains(lesson.Day, *lesson.StartTime, *lesson.EndTime)
	})
}
