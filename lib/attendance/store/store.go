package attendancestore

import (
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Attendance) (id string, err error)
	GetByUserAndDate(userID, date string) (rec *dbmodels.Attendance, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByMonth(userID, monthPrefix string) (list []dbmodels.Attendance, err error)
	ListByDate(date string) (list []dbmodels.Attendance, err error)
	ListOpenBefore(date string) (list []dbmodels.Attendance, err error)
	AddBreak(rec dbmodels.AttendanceBreak) error
	CloseBreak(attendanceID string, end time.Time) error
	OpenBreak(attendanceID string) (rec *dbmodels.AttendanceBreak, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Attendance) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByUserAndDate(userID, date string) (*dbmodels.Attendance, error) {
	rec := dbmodels.Attendance{}
	err := i.db.
		Preload("Breaks").
		Where("user_id = ?", userID).
		Where("date = ?", date).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Attendance{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByMonth(userID, monthPrefix string) (list []dbmodels.Attendance, err error) {
	list = []dbmodels.Attendance{}
	tx := i.db.
		Preload("Breaks").
		Preload("User").
		Where("date like ?", monthPrefix+"%")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByDate(date string) (list []dbmodels.Attendance, err error) {
	list = []dbmodels.Attendance{}
	err = i.db.
		Preload("Breaks").
		Preload("User").
		Where("date = ?", date).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListOpenBefore - незакрытые дни за прошедшие даты, для автозакрытия
func (i impl) ListOpenBefore(date string) (list []dbmodels.Attendance, err error) {
	list = []dbmodels.Attendance{}
	err = i.db.
		Preload("Breaks").
		Where("date < ?", date).
		Where("status <> ?", models.AttendanceCompletedStatus).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddBreak(rec dbmodels.AttendanceBreak) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) CloseBreak(attendanceID string, end time.Time) error {
	return i.db.
		Model(&dbmodels.AttendanceBreak{}).
		Where("attendance_id = ?", attendanceID).
		Where("\"end\" is null").
		Update("end", end).
		Error
}

func (i impl) OpenBreak(attendanceID string) (*dbmodels.AttendanceBreak, error) {
	rec := dbmodels.AttendanceBreak{}
	err := i.db.
		Where("attendance_id = ?", attendanceID).
		Where("\"end\" is null").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
