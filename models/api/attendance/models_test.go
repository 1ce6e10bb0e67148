package attendanceapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttendanceFilters(t *testing.T) {
	t.Run(`месяц в формате YYYY-MM`, func(t *testing.T) {
		require.Nil(t, MonthFilter{Month: "2025-02"}.Validate())
		require.NotNil(t, MonthFilter{Month: "2025-13"}.Validate())
		require.NotNil(t, MonthFilter{Month: "02.2025"}.Validate())
		require.NotNil(t, MonthFilter{}.Validate())
	})

	t.Run(`дата в формате YYYY-MM-DD`, func(t *testing.T) {
		require.Nil(t, DayFilter{Date: "2025-02-03"}.Validate())
		require.NotNil(t, DayFilter{Date: "2025-02-30"}.Validate())
		require.NotNil(t, DayFilter{Date: "03.02.2025"}.Validate())
	})
}
