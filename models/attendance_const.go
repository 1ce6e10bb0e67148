package models

type AttendanceStatus string

const (
	AttendanceWorkingStatus   AttendanceStatus = "WORKING"
	AttendanceBreakStatus     AttendanceStatus = "BREAK"
	AttendanceCompletedStatus AttendanceStatus = "COMPLETED"
)

var attendanceStatusHumanName = map[AttendanceStatus]string{
	AttendanceWorkingStatus:   "Работает",
	AttendanceBreakStatus:     "Перерыв",
	AttendanceCompletedStatus: "День закрыт",
}

func (r AttendanceStatus) ToHuman() string {
	if human, exist := attendanceStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

// AttendanceDateFormat - формат даты рабочего дня (YYYY-MM-DD)
const AttendanceDateFormat = "2006-01-02"

// FinancePeriodFormat - формат расчетного периода (YYYY-MM)
const FinancePeriodFormat = "2006-01"
