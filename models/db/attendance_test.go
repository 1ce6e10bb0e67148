package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAttendanceWorkedDuration(t *testing.T) {
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) *time.Time {
		v := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		return &v
	}

	t.Run(`день без отметки ухода не учитывается`, func(t *testing.T) {
		rec := Attendance{CheckIn: at(9, 0)}
		require.Equal(t, time.Duration(0), rec.WorkedDuration())
	})

	t.Run(`перерывы вычитаются из отработанного времени`, func(t *testing.T) {
		rec := Attendance{
			CheckIn:  at(9, 0),
			CheckOut: at(18, 0),
			Breaks: []AttendanceBreak{
				{Start: *at(13, 0), End: at(14, 0)},
				{Start: *at(16, 0), End: at(16, 30)},
			},
		}
		require.Equal(t, 7*time.Hour+30*time.Minute, rec.WorkedDuration())
	})

	t.Run(`незакрытый перерыв не вычитается`, func(t *testing.T) {
		rec := Attendance{
			CheckIn:  at(9, 0),
			CheckOut: at(18, 0),
			Breaks: []AttendanceBreak{
				{Start: *at(13, 0)},
			},
		}
		require.Equal(t, 9*time.Hour, rec.WorkedDuration())
	})
}
