package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swimdesk/swimdesk-api/internal/dto"
	"github.com/swimdesk/swimdesk-api/internal/models"
	"github.com/swimdesk/swimdesk-api/internal/scheduler"
	appErrors "github.com/swimdesk/swimdesk-api/pkg/errors"
)

// ScheduleConfig governs the request registry.
type ScheduleConfig struct {
	MaxStudents int
}

// ScheduleService owns the student request registry and executes
// scheduling runs against the static instructor roster. The mutex
// serialises submissions and runs: at most one run executes at a time and
// every run sees a consistent registry snapshot.
type ScheduleService struct {
	mu         sync.Mutex
	roster     []models.Instructor
	students   []*models.StudentRequest
	names      map[string]struct{}
	lastResult *dto.ScheduleResponse

	maxStudents int
	validator   *validator.Validate
	logger      *zap.Logger
	metrics     *MetricsService
}

// NewScheduleService wires the scheduling dependencies.
func NewScheduleService(roster []models.Instructor, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg ScheduleConfig) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxStudents <= 0 {
		cfg.MaxStudents = 30
	}
	return &ScheduleService{
		roster:      roster,
		names:       make(map[string]struct{}),
		maxStudents: cfg.MaxStudents,
		validator:   validate,
		logger:      logger,
		metrics:     metrics,
	}
}

// Submit registers a student request, enforcing the boundary rules: valid
// payload, unique name, bounded registry.
func (s *ScheduleService) Submit(ctx context.Context, req dto.SubmitStudentRequest) (*dto.SubmitStudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	student, err := s.buildStudent(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.names[student.Name]; dup {
		return nil, appErrors.Clone(appErrors.ErrDuplicateStudent, fmt.Sprintf("student %s is already in the list", student.Name))
	}
	if len(s.students) >= s.maxStudents {
		return nil, appErrors.Clone(appErrors.ErrCapacityReached, "maximum student limit reached, no more students can be added")
	}

	s.students = append(s.students, student)
	s.names[student.Name] = struct{}{}

	s.logger.Info("student submitted",
		zap.String("name", student.Name),
		zap.String("lesson_type", string(student.LessonType)),
		zap.Int("registered", len(s.students)),
	)

	return &dto.SubmitStudentResponse{
		Name:           student.Name,
		RemainingSpots: s.maxStudents - len(s.students),
	}, nil
}

// List returns the submitted requests in submission order.
func (s *ScheduleService) List(ctx context.Context) []dto.StudentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]dto.StudentRecord, 0, len(s.students))
	for _, student := range s.students {
		record := dto.StudentRecord{
			Name:       student.Name,
			LessonType: string(student.LessonType),
			SwimStyles: student.SwimStyles,
		}
		for _, window := range student.Availability {
			record.Availability = append(record.Availability, dto.TimeWindowPayload{
				Day:   window.Day,
				Start: window.Start.String(),
				End:   window.End.String(),
			})
		}
		records = append(records, record)
	}
	return records
}

// Count returns the registry size.
func (s *ScheduleService) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.students)
}

// Schedule executes one full scheduling run and returns the assigned and
// unassigned lesson records. Runs are serialised; each run rebuilds the
// grid from the roster and owns all of its state.
func (s *ScheduleService) Schedule(ctx context.Context) (*dto.ScheduleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()
	started := time.Now()

	run := scheduler.NewRun(s.roster, s.students, s.logger.With(zap.String("run_id", runID)))
	result := run.Execute()
	elapsed := time.Since(started)

	resp := &dto.ScheduleResponse{
		RunID:             runID,
		ElapsedMS:         elapsed.Milliseconds(),
		AssignedLessons:   make([]dto.AssignedLessonRecord, 0, len(result.Assigned)),
		UnassignedLessons: make([]dto.UnassignedLessonRecord, 0, len(result.Unassigned)),
	}
	for _, lesson := range result.Assigned {
		resp.AssignedLessons = append(resp.AssignedLessons, assignedRecord(lesson))
	}
	for _, lesson := range result.Unassigned {
		resp.UnassignedLessons = append(resp.UnassignedLessons, dto.UnassignedLessonRecord{
			LessonID:   lesson.ID,
			LessonType: string(lesson.Type),
			SwimStyle:  lesson.SwimStyle,
			Students:   lesson.Students,
		})
	}
	s.lastResult = resp

	if s.metrics != nil {
		assigned, unassigned := 0, 0
		byType := make(map[string]int)
		for _, lesson := range result.Assigned {
			assigned += len(lesson.Students)
			byType[string(lesson.Type)]++
		}
		for _, lesson := range result.Unassigned {
			unassigned += len(lesson.Students)
			byType[string(lesson.Type)]++
		}
		s.metrics.ObserveRun(elapsed, assigned, unassigned, byType)
	}

	return resp, nil
}

// Reset discards the retained result of the previous run. Run-scoped state
// (grid, score tables, lesson collections) is owned by each run and needs
// no clearing; the student registry is deliberately kept.
func (s *ScheduleService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = nil
	s.logger.Info("run state reset", zap.Int("students_kept", len(s.students)))
}

// LastResult returns the retained result of the most recent run, if any.
func (s *ScheduleService) LastResult(ctx context.Context) *dto.ScheduleResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

func (s *ScheduleService) buildStudent(req dto.SubmitStudentRequest) (*models.StudentRequest, error) {
	student := &models.StudentRequest{
		Name:       req.Name,
		LessonType: models.LessonType(req.LessonType),
		SwimStyles: req.SwimStyles,
	}
	for _, window := range req.Availability {
		start, err := models.ParseClockTime(window.Start)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid availability start time")
		}
		end, err := models.ParseClockTime(window.End)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid availability end time")
		}
		if !start.Before(end) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("availability window on %s ends before it starts", window.Day))
		}
		student.Availability = append(student.Availability, models.TimeWindow{
			Day:   window.Day,
			Start: start,
			End:   end,
		})
	}
	return student, nil
}

func assignedRecord(lesson *models.Lesson) dto.AssignedLessonRecord {
	record := dto.AssignedLessonRecord{
		LessonID:   lesson.ID,
		LessonType: string(lesson.Type),
		SwimStyle:  lesson.SwimStyle,
		Students:   lesson.Students,
	}
	if lesson.Instructor != "" {
		record.Instructor = &lesson.Instructor
	}
	if lesson.Day != "" {
		record.Day = &lesson.Day
	}
	if lesson.StartTime != nil {
		start := lesson.StartTime.String()
		record.StartTime = &start
	}
	if lesson.EndTime != nil {
		end := lesson.EndTime.String()
		record.EndTime = &end
	}
	return record
}
