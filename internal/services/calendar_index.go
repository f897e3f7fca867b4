package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/haven/internal/analytics"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/records"
	"github.com/terraincognita07/haven/internal/storage"
)

const periodDataKey = "periodData"

// densityWindowDays is the trailing window behind the calendar's density
// bar.
const densityWindowDays = 7

// CalendarIndex maps concrete dates to their day-cell state and owns the
// period-mark mutations. Month navigation is pure arithmetic; only mark
// mutations touch the store.
type CalendarIndex struct {
	marks *records.Table[models.DayMark]
}

func NewCalendarIndex(store storage.Store) *CalendarIndex {
	return &CalendarIndex{marks: records.NewTable[models.DayMark](store, periodDataKey)}
}

type DayCell struct {
	Date    string
	Day     int
	Mark    models.DayMark
	HasMark bool
	IsToday bool
}

// MonthCells returns the ordered day cells of the given month, each
// annotated with its mark when one exists.
func (index *CalendarIndex) MonthCells(year int, month time.Month, today time.Time) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := Today(today)

	cells := make([]DayCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location()).Format(dateLayout)
		mark, hasMark := index.marks.Get(date)
		cells = append(cells, DayCell{
			Date:    date,
			Day:     day,
			Mark:    mark,
			HasMark: hasMark,
			IsToday: date == todayKey,
		})
	}
	return cells
}

// ToggleIsPeriod flips the period flag for the date, creating the mark when
// absent. A stored flow level is deliberately left in place when the flag
// flips off.
func (index *CalendarIndex) ToggleIsPeriod(date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return index.marks.Mutate(date, func(mark models.DayMark) models.DayMark {
		mark.IsPeriod = !mark.IsPeriod
		return mark
	})
}

// SetFlow records the flow intensity for the date and forces the period
// flag on: a flow level is only meaningful on a period day.
func (index *CalendarIndex) SetFlow(date string, level string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	if !models.ValidFlowLevel(level) {
		return invalidf("flow must be light, medium or heavy, got %q", level)
	}
	return index.marks.Mutate(date, func(mark models.DayMark) models.DayMark {
		mark.IsPeriod = true
		mark.Flow = level
		return mark
	})
}

func (index *CalendarIndex) ToggleIsOvulation(date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return index.marks.Mutate(date, func(mark models.DayMark) models.DayMark {
		mark.IsOvulation = !mark.IsOvulation
		return mark
	})
}

func (index *CalendarIndex) Mark(date string) (models.DayMark, bool) {
	return index.marks.Get(date)
}

// PeriodDayCount counts period-marked days within the given month.
func (index *CalendarIndex) PeriodDayCount(year int, month time.Month) int {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	count := 0
	for date, mark := range index.marks.All() {
		if mark.IsPeriod && strings.HasPrefix(date, prefix) {
			count++
		}
	}
	return count
}

// MonthDensity is the month's period-day count over the trailing window,
// capped at 1, as rendered by the calendar's progress bar.
func (index *CalendarIndex) MonthDensity(year int, month time.Month) float64 {
	return analytics.PeriodDensity(index.PeriodDayCount(year, month), densityWindowDays)
}

// PeriodDays lists every period-marked date in chronological order.
func (index *CalendarIndex) PeriodDays(location *time.Location) []time.Time {
	days := make([]time.Time, 0)
	for _, date := range index.marks.Dates() {
		mark, _ := index.marks.Get(date)
		if !mark.IsPeriod {
			continue
		}
		if day, ok := parseDate(date, location); ok {
			days = append(days, day)
		}
	}
	return days
}

// Stats derives the observed cycle lengths and forward predictions from
// the period marks.
func (index *CalendarIndex) Stats(now time.Time) analytics.CycleStats {
	return analytics.BuildCycleStats(index.PeriodDays(now.Location()), now)
}
