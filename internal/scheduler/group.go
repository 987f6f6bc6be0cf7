package scheduler

import (
	"go.uber.org/zap"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

// assignGroups repeatedly carves the largest remaining style bucket across
// the whole grid into a one-hour group lesson until no candidates remain.
// Largest-first maximises instructor utilisation early at the cost of
// global optimality: smaller compatible groups found later may fragment
// into private lessons or fallback singletons. Ties go to the first bucket
// seen in the documented scan order.
func (r *Run) assignGroups() {
	for {
		var (
			bestDay   string
			bestHour  int
			bestStyle string
			bestGroup []*models.StudentRequest
		)
		r.grid.forEachSlot(func(day string, hour int, slot *Slot) {
			for _, style := range slot.styleOrder() {
				if len(slot.Buckets[style]) > len(bestGroup) {
					bestDay, bestHour, bestStyle = day, hour, style
					bestGroup = slot.Buckets[style]
				}
			}
		})
		if len(bestGroup) == 0 {
			return
		}

		slot, _ := r.grid.Slot(bestDay, bestHour)
		// A non-empty bucket implies a teaching instructor (grid invariant).
		instructor, _ := slot.firstInstructorFor(bestStyle)

		members := append([]*models.StudentRequest(nil), bestGroup...)
		start := models.NewClockTime(bestHour, 0)
		end := start.AddMinutes(models.GroupLessonMinutes)
		lesson := &models.Lesson{
			ID:         len(r.lessons),
			Type:       models.LessonTypeGroup,
			SwimStyle:  bestStyle,
			Students:   studentNames(members),
			Instructor: instructor.Name,
			Day:        bestDay,
			StartTime:  &start,
			EndTime:    &end,
		}
		r.record(lesson, members)

		r.logger.Debug("group lesson assigned",
			zap.Int("lesson_id", lesson.ID),
			zap.String("style", bestStyle),
			zap.String("day", bestDay),
			zap.Int("hour", bestHour),
			zap.Int("size", len(members)),
		)

		r.grid.Consume(bestDay, bestHour, bestStyle, instructor, members)
	}
}
