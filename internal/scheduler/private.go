package scheduler

import (
	"go.uber.org/zap"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

// assignPrivates repeatedly serves the least-populated non-empty slot until
// every candidate is drained. In that slot the student with the lowest
// flexibility score goes first: they have the fewest alternative slots
// left. The student's requested styles are tried in their listed order and
// the first one an instructor in the slot teaches fixes both the style and
// the instructor of a 45-minute private lesson.
func (r *Run) assignPrivates() {
	for {
		var (
			selDay  string
			selHour int
			selSlot *Slot
		)
		minCount := 0
		r.grid.forEachSlot(func(day string, hour int, slot *Slot) {
			count := len(slot.distinctStudents())
			if count > 0 && (selSlot == nil || count < minCount) {
				selDay, selHour, selSlot = day, hour, slot
				minCount = count
			}
		})
		if selSlot == nil {
			return
		}

		candidates := selSlot.distinctStudents()
		student := candidates[0]
		for _, candidate := range candidates[1:] {
			if r.scores[candidate.Name] < r.scores[student.Name] {
				student = candidate
			}
		}

		var (
			instructor models.Instructor
			style      string
			found      bool
		)
		for _, want := range student.SwimStyles {
			if instr, ok := selSlot.firstInstructorFor(want); ok {
				instructor, style, found = instr, want, true
				break
			}
		}
		if !found {
			// No instructor in this slot covers any requested style. Drop
			// the candidate from this slot only and let the fallback phase
			// pick the student up; a partial lesson is never emitted.
			r.dropFromSlot(selSlot, student)
			continue
		}

		start := models.NewClockTime(selHour, 0)
		end := start.AddMinutes(models.PrivateLessonMinutes)
		lesson := &models.Lesson{
			ID:         len(r.lessons),
			Type:       models.LessonTypePrivate,
			SwimStyle:  style,
			Students:   []string{student.Name},
			Instructor: instructor.Name,
			Day:        selDay,
			StartTime:  &start,
			EndTime:    &end,
		}
		r.record(lesson, []*models.StudentRequest{student})

		r.logger.Debug("private lesson assigned",
			zap.Int("lesson_id", lesson.ID),
			zap.String("student", student.Name),
			zap.String("style", style),
			zap.String("day", selDay),
			zap.Int("hour", selHour),
		)

		r.grid.Consume(selDay, selHour, style, instructor, []*models.StudentRequest{student})
	}
}

// dropFromSlot removes one student from every bucket of a single slot so
// the fixpoint scan keeps shrinking.
func (r *Run) dropFromSlot(slot *Slot, student *models.StudentRequest) {
	for style, bucket := range slot.Buckets {
		kept := bucket[:0:0]
		for _, candidate := range bucket {
			if candidate.Name != student.Name {
				kept = append(kept, candidate)
			}
		}
		slot.Buckets[style] = kept
	}
}
