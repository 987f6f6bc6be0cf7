package scheduler

import (
	"sort"

	"github.com/samber/lo"

	"github.com/swimdesk/swimdesk-api/internal/models"
)

// SwimStyles is the canonical style universe. It is also the tie-break
// order for bucket scans: slots are visited day by day (weekdayRank order),
// hour ascending, and buckets within a slot in this order. Styles outside
// the list (from a roster override) sort after it, alphabetically.
var SwimStyles = []string{"freestyle", "breaststroke", "butterfly", "backstroke"}

// weekdayRank fixes the day iteration order, Sunday first to match the
// roster's week. Unknown day names rank after the known seven.
var weekdayRank = map[string]int{
	"Sunday":    0,
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
}

// Slot is one (day, hour) cell: the instructors on deck and the candidate
// students projected onto it, bucketed by swim style. A slot exists only
// while at least one instructor is available in it, and a bucket may be
// non-empty only while some instructor in the slot teaches that style.
type Slot struct {
	Instructors []models.Instructor
	Buckets     map[string][]*models.StudentRequest
}

func newSlot() *Slot {
	buckets := make(map[string][]*models.StudentRequest, len(SwimStyles))
	for _, style := range SwimStyles {
		buckets[style] = nil
	}
	return &Slot{Buckets: buckets}
}

// Teachable reports whether any instructor currently in the slot teaches
// the style.
func (s *Slot) Teachable(style string) bool {
	return lo.SomeBy(s.Instructors, func(i models.Instructor) bool {
		return i.Teaches(style)
	})
}

// firstInstructorFor returns the first instructor in slot order teaching
// the style.
func (s *Slot) firstInstructorFor(style string) (models.Instructor, bool) {
	return lo.Find(s.Instructors, func(i models.Instructor) bool {
		return i.Teaches(style)
	})
}

// styleOrder returns the slot's bucket keys in deterministic scan order.
func (s *Slot) styleOrder() []string {
	order := make([]string, 0, len(s.Buckets))
	for _, style := range SwimStyles {
		if _, ok := s.Buckets[style]; ok {
			order = append(order, style)
		}
	}
	extras := lo.Filter(lo.Keys(s.Buckets), func(style string, _ int) bool {
		return !lo.Contains(SwimStyles, style)
	})
	sort.Strings(extras)
	return append(order, extras...)
}

// distinctStudents returns the students present in any bucket of the slot,
// first occurrence wins, in style scan order.
func (s *Slot) distinctStudents() []*models.StudentRequest {
	var all []*models.StudentRequest
	for _, style := range s.styleOrder() {
		all = append(all, s.Buckets[style]...)
	}
	return lo.UniqBy(all, func(st *models.StudentRequest) string { return st.Name })
}

// Grid is the availability grid for one scheduling run, keyed by day then
// integer hour of day. It is rebuilt from the roster at the start of every
// run; there is no incremental update path.
type Grid struct {
	slots map[string]map[int]*Slot
}

// NewGrid builds the grid from the instructor roster: one slot per whole
// hour of every availability window, with the instructor appended in roster
// order.
func NewGrid(roster []models.Instructor) *Grid {
	g := &Grid{slots: make(map[string]map[int]*Slot)}
	for _, instructor := range roster {
		for _, window := range instructor.Availability {
			for hour := window.Start.Hour; hour < window.End.Hour; hour++ {
				slot := g.ensureSlot(window.Day, hour)
				slot.Instructors = append(slot.Instructors, instructor)
			}
		}
	}
	return g
}

func (g *Grid) ensureSlot(day string, hour int) *Slot {
	if g.slots[day] == nil {
		g.slots[day] = make(map[int]*Slot)
	}
	if g.slots[day][hour] == nil {
		g.slots[day][hour] = newSlot()
	}
	return g.slots[day][hour]
}

// Slot returns the cell at (day, hour), if it exists.
func (g *Grid) Slot(day string, hour int) (*Slot, bool) {
	slot, ok := g.slots[day][hour]
	return slot, ok
}

// Days returns the grid's day keys in weekdayRank order.
func (g *Grid) Days() []string {
	days := lo.Keys(g.slots)
	sort.Slice(days, func(i, j int) bool {
		ri, iKnown := weekdayRank[days[i]]
		rj, jKnown := weekdayRank[days[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return days[i] < days[j]
		}
	})
	return days
}

// Hours returns the hour keys of a day in ascending order.
func (g *Grid) Hours(day string) []int {
	hours := lo.Keys(g.slots[day])
	sort.Ints(hours)
	return hours
}

// forEachSlot visits every slot in the documented deterministic order.
func (g *Grid) forEachSlot(visit func(day string, hour int, slot *Slot)) {
	for _, day := range g.Days() {
		for _, hour := range g.Hours(day) {
			visit(day, hour, g.slots[day][hour])
		}
	}
}

// RemoveStudents purges the given students from every bucket in every slot.
func (g *Grid) RemoveStudents(students []*models.StudentRequest) {
	removed := make(map[string]struct{}, len(students))
	for _, student := range students {
		removed[student.Name] = struct{}{}
	}
	g.forEachSlot(func(_ string, _ int, slot *Slot) {
		for style, bucket := range slot.Buckets {
			slot.Buckets[style] = lo.Filter(bucket, func(st *models.StudentRequest, _ int) bool {
				_, gone := removed[st.Name]
				return !gone
			})
		}
	})
}

// Consume is the cleanup primitive shared by the group and private
// assigners. After a lesson is carved out of (day, hour, style, instructor)
// it purges the removed students globally, then repairs the triggering
// slot: the slot is deleted outright when the used instructor was its last
// one; otherwise the instructor leaves, a group assignment (more than one
// student removed) clears the consumed style bucket entirely, and every
// bucket whose style no remaining instructor teaches is cleared.
func (g *Grid) Consume(day string, hour int, style string, instructor models.Instructor, removed []*models.StudentRequest) {
	g.RemoveStudents(removed)

	slot, ok := g.Slot(day, hour)
	if !ok {
		return
	}

	if len(slot.Instructors) == 1 {
		delete(g.slots[day], hour)
		if len(g.slots[day]) == 0 {
			delete(g.slots, day)
		}
		return
	}

	slot.Instructors = lo.Filter(slot.Instructors, func(i models.Instructor, _ int) bool {
		return i.Name != instructor.Name
	})

	if len(removed) > 1 {
		slot.Buckets[style] = nil
	}

	for bucketStyle := range slot.Buckets {
		if len(slot.Buckets[bucketStyle]) > 0 && !slot.Teachable(bucketStyle) {
			slot.Buckets[bucketStyle] = nil
		}
	}
}

// Empty reports whether no slot remains.
func (g *Grid) Empty() bool {
	for _, hours := range g.slots {
		if len(hours) > 0 {
			return false
		}
	}
	return true
}
