package scheduler

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

// Run owns all state of one scheduling pass: the availability grid, the
// per-student flexibility scores and assignments, and the lesson
// collections. A Run is constructed fresh per invocation from immutable
// inputs, used once, and discarded; callers serialise overlapping runs.
type Run struct {
	grid     *Grid
	students []*models.StudentRequest

	// flexibility score per student name: how many distinct slots the
	// student qualified for during projection. Lower means fewer
	// alternatives left.
	scores map[string]int
	// lesson each student ended up in, keyed by name.
	assigned map[string]*models.Lesson

	lessons    []*models.Lesson
	unassigned []*models.Lesson

	logger *zap.Logger
}

// Result is the outcome of a completed run.
type Result struct {
	Assigned   []*models.Lesson
	Unassigned []*models.Lesson
	Scores     map[string]int
}

// NewRun builds a run over the given roster and student requests. The
// inputs are not mutated.
func NewRun(roster []models.Instructor, students []*models.StudentRequest, logger *zap.Logger) *Run {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Run{
		grid:     NewGrid(roster),
		students: students,
		scores:   make(map[string]int, len(students)),
		assigned: make(map[string]*models.Lesson, len(students)),
		logger:   logger,
	}
}

// Execute runs the full pipeline. The phase order is itself the scheduling
// policy: group-preference students are projected and grouped first,
// private students next, flexible-private students are retried as privates,
// and only the true leftovers go through the merge-or-singleton fallback.
func (r *Run) Execute() Result {
	r.project(models.LessonTypeGroup, models.LessonTypeFlexibleGroup)
	r.assignGroups()
	r.project(models.LessonTypePrivate)
	r.assignPrivates()
	r.project(models.LessonTypeFlexiblePrivate)
	r.assignPrivates()
	r.resolveFallback()

	r.logger.Info("scheduling run complete",
		zap.Int("students", len(r.students)),
		zap.Int("assigned_lessons", len(r.lessons)),
		zap.Int("unassigned_lessons", len(r.unassigned)),
	)
	return Result{Assigned: r.lessons, Unassigned: r.unassigned, Scores: r.scores}
}

// Grid exposes the run's grid for invariant checks.
func (r *Run) Grid() *Grid {
	return r.grid
}

// project walks the students whose lesson type is in the filter and adds
// them as candidates to every grid slot inside their availability where an
// instructor can teach one of their requested styles. A slot counts toward
// the flexibility score at most once, however many styles matched in it.
// Projection only adds candidates; instructor lists are untouched.
func (r *Run) project(include ...models.LessonType) {
	for _, student := range r.students {
		if !lo.Contains(include, student.LessonType) {
			continue
		}
		for _, window := range student.Availability {
			for hour := window.Start.Hour; hour < window.End.Hour; hour++ {
				slot, ok := r.grid.Slot(window.Day, hour)
				if !ok {
					continue
				}
				matched := false
				for _, style := range student.SwimStyles {
					if slot.Teachable(style) {
						slot.Buckets[style] = append(slot.Buckets[style], student)
						matched = true
					}
				}
				if matched {
					r.scores[student.Name]++
				}
			}
		}
	}
}

// record appends a lesson to the assigned collection and marks its roster.
func (r *Run) record(lesson *models.Lesson, members []*models.StudentRequest) {
	r.lessons = append(r.lessons, lesson)
	for _, member := range members {
		r.assigned[member.Name] = lesson
	}
}

func studentNames(students []*models.StudentRequest) []string {
	return lo.Map(students, func(st *models.StudentRequest, _ int) string { return st.Name })
}
