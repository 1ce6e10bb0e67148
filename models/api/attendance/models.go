package attendanceapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type BreakRequest struct {
	Reason string `json:"reason"`
}

type BreakView struct {
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

type AttendanceView struct {
	ID       string      `json:"id"`
	UserID   string      `json:"user_id"`
	UserName string      `json:"user_name,omitempty"`
	Date     string      `json:"date"`
	CheckIn  *time.Time  `json:"check_in,omitempty"`
	CheckOut *time.Time  `json:"check_out,omitempty"`
	Status   string      `json:"status"`
	Breaks   []BreakView `json:"breaks"`
}

// MonthFilter - месяц в формате YYYY-MM
type MonthFilter struct {
	Month  string `json:"month"`
	UserID string `json:"user_id"`
}

func (r MonthFilter) Validate() error {
	if _, err := time.Parse("2006-01", r.Month); err != nil {
		return errors.New("месяц должен быть в формате YYYY-MM")
	}
	return nil
}

type DayFilter struct {
	Date string `json:"date"`
}

func (r DayFilter) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("дата должна быть в формате YYYY-MM-DD")
	}
	return nil
}
