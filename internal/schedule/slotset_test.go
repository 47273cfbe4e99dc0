package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSlotSetCollapsesDuplicates(t *testing.T) {
	s := NewSlotSet(5, 3, 5, 1, 3)
	assert.Equal(t, SlotSet{1, 3, 5}, s)
}

func TestSlotSetContains(t *testing.T) {
	s := NewSlotSet(2, 3, 32, 33)
	assert.True(t, s.Contains(32))
	assert.False(t, s.Contains(4))
	assert.False(t, SlotSet(nil).Contains(0))
}

func TestSlotSetIntersects(t *testing.T) {
	a := NewSlotSet(2, 3)
	b := NewSlotSet(3, 4)
	c := NewSlotSet(4, 5)

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(c))
	assert.False(t, a.Intersects(nil))
}

func TestSlotSetUnion(t *testing.T) {
	a := NewSlotSet(1, 3, 5)
	b := NewSlotSet(2, 3, 6)
	assert.Equal(t, SlotSet{1, 2, 3, 5, 6}, a.Union(b))
	assert.Equal(t, SlotSet{1, 3, 5}, a.Union(nil))
	assert.Equal(t, SlotSet{2, 3, 6}, SlotSet(nil).Union(b))
}

func TestCompatibleIsSymmetric(t *testing.T) {
	a := NewSlotSet(2, 3)
	b := NewSlotSet(3, 4)
	c := NewSlotSet(10, 11)

	assert.False(t, Compatible(a, b))
	assert.False(t, Compatible(b, a))
	assert.True(t, Compatible(a, c))
	assert.True(t, Compatible(c, a))
	assert.True(t, Compatible(nil, a))
}

func TestHasOverlapMultisetLaw(t *testing.T) {
	assert.False(t, HasOverlap())
	assert.False(t, HasOverlap(NewSlotSet(1, 2), NewSlotSet(3, 4), NewSlotSet(5)))
	assert.True(t, HasOverlap(NewSlotSet(1, 2), NewSlotSet(3, 4), NewSlotSet(4, 5)))

	// Overlap between non-adjacent sets must still be detected.
	assert.True(t, HasOverlap(NewSlotSet(1), NewSlotSet(2), NewSlotSet(1)))

	// No-meeting picks contribute nothing.
	assert.False(t, HasOverlap(nil, NewSlotSet(1), nil))
}

func TestDayAndPeriodHelpers(t *testing.T) {
	assert.Equal(t, 2, DayOf(62))
	assert.Equal(t, 2, PeriodOf(62))
	assert.Equal(t, 800, PeriodStart(2))
	assert.Equal(t, 730, PeriodStart(1))
}
