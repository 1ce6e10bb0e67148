package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// DayString - дата в формате рабочего дня YYYY-MM-DD
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// PeriodString - расчетный период YYYY-MM
func PeriodString(t time.Time) string {
	return t.Format("2006-01")
}

// DaysBetween - число календарных дней между датами включительно
func DaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if toDay.Before(fromDay) {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours()/24) + 1
}
