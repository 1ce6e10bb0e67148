package dbmodels

import (
	leaveapimodels "hrms-backend/models/api/leave"

	"github.com/pkg/errors"
)

type LeaveType struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	MaxDays     int
	// ShortDay - тип учитывается в часах и минутах, а не в целых днях
	ShortDay bool
}

func (r LeaveType) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название типа отпуска")
	}
	if r.MaxDays < 0 {
		return errors.New("максимум дней не может быть отрицательным")
	}
	return nil
}

func (r LeaveType) ToModel() leaveapimodels.LeaveTypeView {
	return leaveapimodels.LeaveTypeView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		MaxDays:     r.MaxDays,
		ShortDay:    r.ShortDay,
	}
}
