package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourse() *Course {
	return &Course{
		Title:    "線形代数",
		Weekday:  "月",
		Period:   1,
		Color:    ColorBlue,
		Year:     2025,
		Semester: SemesterFirst,
	}
}

func TestCourse_Slot(t *testing.T) {
	c := validCourse()
	assert.Equal(t, SlotKey{Year: 2025, Semester: SemesterFirst, Weekday: "月", Period: 1}, c.Slot())
	assert.Equal(t, "2025 前学期 月 1限", c.Slot().String())
}

func TestCourse_Validate(t *testing.T) {
	require.NoError(t, validCourse().Validate())

	tests := []struct {
		name  string
		mut   func(c *Course)
		field string
	}{
		{"missing title", func(c *Course) { c.Title = "" }, "title"},
		{"sunday", func(c *Course) { c.Weekday = "日" }, "weekday"},
		{"period zero", func(c *Course) { c.Period = 0 }, "period"},
		{"period seven", func(c *Course) { c.Period = 7 }, "period"},
		{"legacy year", func(c *Course) { c.Year = LegacyYear }, "year"},
		{"bad semester", func(c *Course) { c.Semester = "summer" }, "semester"},
		{"bad color", func(c *Course) { c.Color = "teal" }, "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCourse()
			tt.mut(c)
			var vErr *ValidationError
			require.ErrorAs(t, c.Validate(), &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestWeekdayLabels(t *testing.T) {
	assert.Equal(t, "日", WeekdayLabel(time.Sunday))
	assert.Equal(t, "土", WeekdayLabel(time.Saturday))

	wd, ok := ParseWeekdayLabel("水")
	require.True(t, ok)
	assert.Equal(t, time.Wednesday, wd)

	_, ok = ParseWeekdayLabel("x")
	assert.False(t, ok)
}

func TestTaskPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, 0, TaskPriority("").Rank())
}

func TestTask_ToggleCompleted(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	task := &Task{Title: "report", Priority: PriorityHigh, Date: now}

	task.ToggleCompleted(now)
	assert.True(t, task.Completed)
	assert.Equal(t, now, task.UpdatedAt)

	task.ToggleCompleted(now)
	assert.False(t, task.Completed)
}

func TestValidationError_NilWhenEmpty(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("b", "second")
	v.Add("a", "first")
	assert.EqualError(t, v.OrNil(), "validation failed: a: first; b: second")
}
