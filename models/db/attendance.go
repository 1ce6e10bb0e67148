package dbmodels

import (
	"hrms-backend/models"
	attendanceapimodels "hrms-backend/models/api/attendance"
	"time"
)

type Attendance struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);index:idx_attendance_user_date,unique"`
	User   *User  `gorm:"foreignKey:UserID"`
	// Date - рабочий день в формате YYYY-MM-DD
	Date     string `gorm:"type:varchar(10);index:idx_attendance_user_date,unique"`
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   models.AttendanceStatus `gorm:"type:varchar(20)"`
	Breaks   []AttendanceBreak       `gorm:"foreignKey:AttendanceID"`
}

type AttendanceBreak struct {
	BaseModel
	AttendanceID string `gorm:"type:varchar(36);index"`
	Start        time.Time
	End          *time.Time
	Reason       string
}

func (r Attendance) ToModel() attendanceapimodels.AttendanceView {
	view := attendanceapimodels.AttendanceView{
		ID:       r.ID,
		UserID:   r.UserID,
		Date:     r.Date,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Status:   string(r.Status),
		Breaks:   make([]attendanceapimodels.BreakView, 0, len(r.Breaks)),
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
	}
	for _, b := range r.Breaks {
		view.Breaks = append(view.Breaks, attendanceapimodels.BreakView{
			Start:  b.Start,
			End:    b.End,
			Reason: b.Reason,
		})
	}
	return view
}

// WorkedDuration - чистое отработанное время без перерывов
func (r Attendance) WorkedDuration() time.Duration {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0
	}
	worked := r.CheckOut.Sub(*r.CheckIn)
	for _, b := range r.Breaks {
		if b.End == nil {
			continue
		}
		worked -= b.End.Sub(b.Start)
	}
	if worked < 0 {
		return 0
	}
	return worked
}
