package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

func TestNewGridBuildsHourlySlots(t *testing.T) {
	grid := NewGrid(defaultRoster())

	// Yoni covers Tuesday 08-15, Johnny Tuesday 10-19.
	hours := grid.Hours("Tuesday")
	require.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}, hours)

	early, ok := grid.Slot("Tuesday", 8)
	require.True(t, ok)
	require.Len(t, early.Instructors, 1)
	assert.Equal(t, "Yoni", early.Instructors[0].Name)

	shared, ok := grid.Slot("Tuesday", 10)
	require.True(t, ok)
	require.Len(t, shared.Instructors, 2)
	assert.Equal(t, "Yoni", shared.Instructors[0].Name)
	assert.Equal(t, "Johnny", shared.Instructors[1].Name)

	_, ok = grid.Slot("Tuesday", 19)
	assert.False(t, ok, "slot at the window end hour must not exist")
	_, ok = grid.Slot("Friday", 8)
	assert.False(t, ok)
}

func TestGridDaysFollowWeekOrder(t *testing.T) {
	grid := NewGrid(defaultRoster())
	assert.Equal(t, []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}, grid.Days())
}

func TestGridDaysRankUnknownNamesLast(t *testing.T) {
	roster := []models.Instructor{
		instructor("Dana", []string{"freestyle"},
			window("Someday", 8, 9), window("Monday", 8, 9), window("Anotherday", 8, 9)),
	}
	grid := NewGrid(roster)
	assert.Equal(t, []string{"Monday", "Anotherday", "Someday"}, grid.Days())
}

func TestSlotTeachable(t *testing.T) {
	grid := NewGrid(defaultRoster())

	slot, ok := grid.Slot("Wednesday", 9)
	require.True(t, ok)
	assert.True(t, slot.Teachable("breaststroke"))
	assert.True(t, slot.Teachable("butterfly"))
	assert.False(t, slot.Teachable("freestyle"))
	assert.False(t, slot.Teachable("medley"))
}

func TestConsumeDeletesSlotWithLastInstructor(t *testing.T) {
	grid := NewGrid(defaultRoster())
	yoni := defaultRoster()[0]

	grid.Consume("Wednesday", 8, "breaststroke", yoni, nil)

	_, ok := grid.Slot("Wednesday", 8)
	assert.False(t, ok)
	_, ok = grid.Slot("Wednesday", 9)
	assert.True(t, ok, "other hours of the day survive")
}

func TestConsumeDeletesEmptiedDay(t *testing.T) {
	roster := []models.Instructor{
		instructor("Dana", []string{"freestyle"}, window("Monday", 8, 9)),
	}
	grid := NewGrid(roster)

	grid.Consume("Monday", 8, "freestyle", roster[0], nil)

	assert.Empty(t, grid.Days())
	assert.True(t, grid.Empty())
}

func TestConsumeRemovesInstructorAndPrunesBuckets(t *testing.T) {
	roster := []models.Instructor{
		instructor("Dana", []string{"freestyle"}, window("Monday", 8, 9)),
		instructor("Omer", []string{"backstroke"}, window("Monday", 8, 9)),
	}
	grid := NewGrid(roster)

	slot, ok := grid.Slot("Monday", 8)
	require.True(t, ok)
	free := student("Ana", models.LessonTypePrivate, []string{"freestyle"}, window("Monday", 8, 9))
	back := student("Ben", models.LessonTypePrivate, []string{"backstroke"}, window("Monday", 8, 9))
	slot.Buckets["freestyle"] = append(slot.Buckets["freestyle"], free)
	slot.Buckets["backstroke"] = append(slot.Buckets["backstroke"], back)

	grid.Consume("Monday", 8, "freestyle", roster[0], []*models.StudentRequest{free})

	slot, ok = grid.Slot("Monday", 8)
	require.True(t, ok)
	require.Len(t, slot.Instructors, 1)
	assert.Equal(t, "Omer", slot.Instructors[0].Name)
	assert.Empty(t, slot.Buckets["freestyle"], "no remaining instructor teaches freestyle")
	assert.Equal(t, []*models.StudentRequest{back}, slot.Buckets["backstroke"])
}

func TestConsumeGroupClearsStyleBucket(t *testing.T) {
	roster := []models.Instructor{
		instructor("Dana", []string{"freestyle"}, window("Monday", 8, 9)),
		instructor("Omer", []string{"freestyle"}, window("Monday", 8, 9)),
	}
	grid := NewGrid(roster)

	slot, _ := grid.Slot("Monday", 8)
	members := []*models.StudentRequest{
		student("Ana", models.LessonTypeGroup, []string{"freestyle"}, window("Monday", 8, 9)),
		student("Ben", models.LessonTypeGroup, []string{"freestyle"}, window("Monday", 8, 9)),
	}
	late := student("Gil", models.LessonTypeGroup, []string{"freestyle"}, window("Monday", 8, 9))
	slot.Buckets["freestyle"] = append(slot.Buckets["freestyle"], members[0], members[1], late)

	grid.Consume("Monday", 8, "freestyle", roster[0], members)

	slot, ok := grid.Slot("Monday", 8)
	require.True(t, ok)
	assert.Empty(t, slot.Buckets["freestyle"], "group assignment drains the whole bucket")
}

func TestRemoveStudentsPurgesEverySlot(t *testing.T) {
	grid := NewGrid(defaultRoster())
	leo := student("Leo", models.LessonTypeGroup, []string{"breaststroke"}, window("Tuesday", 8, 10))

	for _, hour := range []int{8, 9} {
		slot, ok := grid.Slot("Tuesday", hour)
		require.True(t, ok)
		slot.Buckets["breaststroke"] = append(slot.Buckets["breaststroke"], leo)
	}

	grid.RemoveStudents([]*models.StudentRequest{leo})

	for _, hour := range []int{8, 9} {
		slot, _ := grid.Slot("Tuesday", hour)
		assert.Empty(t, slot.Buckets["breaststroke"])
	}
}

func TestStyleOrderPutsCanonicalStylesFirst(t *testing.T) {
	slot := newSlot()
	slot.Buckets["medley"] = nil
	slot.Buckets["doggy-paddle"] = nil

	assert.Equal(t,
		[]string{"freestyle", "breaststroke", "butterfly", "backstroke", "doggy-paddle", "medley"},
		slot.styleOrder())
}

func TestDistinctStudentsFirstOccurrenceWins(t *testing.T) {
	slot := newSlot()
	leo := student("Leo", models.LessonTypeGroup, []string{"freestyle", "backstroke"}, window("Monday", 8, 9))
	ana := student("Ana", models.LessonTypeGroup, []string{"breaststroke"}, window("Monday", 8, 9))
	slot.Buckets["freestyle"] = append(slot.Buckets["freestyle"], leo)
	slot.Buckets["breaststroke"] = append(slot.Buckets["breaststroke"], ana)
	slot.Buckets["backstroke"] = append(slot.Buckets["backstroke"], leo)

	distinct := slot.distinctStudents()
	require.Len(t, distinct, 2)
	assert.Equal(t, "Leo", distinct[0].Name)
	assert.Equal(t, "Ana", distinct[1].Name)
}
