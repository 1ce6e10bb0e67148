package dbmodels

import (
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	"time"
)

type Leave struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index"`
	User        *User  `gorm:"foreignKey:UserID"`
	LeaveTypeID string `gorm:"type:varchar(36);index"`
	LeaveType   *LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Hours       int
	Minutes     int
	Reason      string
	Status      models.LeaveStatus `gorm:"type:varchar(20);index"`
	// Kind - явный признак вместо эвристики по заполненности allotted_by
	Kind       models.LeaveKind `gorm:"type:varchar(20);index"`
	AllottedBy string           `gorm:"type:varchar(36)"`
	DecidedBy  string           `gorm:"type:varchar(36)"`
	DecidedAt  *time.Time
	// SystemGenerated - запись создана системой (например, вычет за опоздание)
	SystemGenerated bool
	RejectReason    string
}

func (r Leave) ToModel() leaveapimodels.LeaveView {
	view := leaveapimodels.LeaveView{
		ID:              r.ID,
		UserID:          r.UserID,
		LeaveTypeID:     r.LeaveTypeID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Days:            r.Days,
		Hours:           r.Hours,
		Minutes:         r.Minutes,
		Reason:          r.Reason,
		Status:          string(r.Status),
		StatusName:      r.Status.ToHuman(),
		Kind:            string(r.Kind),
		AllottedBy:      r.AllottedBy,
		DecidedBy:       r.DecidedBy,
		DecidedAt:       r.DecidedAt,
		SystemGenerated: r.SystemGenerated,
		RejectReason:    r.RejectReason,
		CreatedAt:       r.CreatedAt,
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
	}
	if r.LeaveType != nil {
		view.LeaveTypeName = r.LeaveType.Name
	}
	return view
}
