package attendancehandler

import (
	"bytes"
	"fmt"
	"hrms-backend/db"
	attendancestore "hrms-backend/lib/attendance/store"
	xlsexport "hrms-backend/lib/export/xls"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	attendanceapimodels "hrms-backend/models/api/attendance"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CheckIn(userID string) (*attendanceapimodels.AttendanceView, error)
	CheckOut(userID string) (*attendanceapimodels.AttendanceView, error)
	StartBreak(userID, reason string) error
	EndBreak(userID string) error
	Today(userID string) (*attendanceapimodels.AttendanceView, error)
	ListMonth(filter attendanceapimodels.MonthFilter) (list []attendanceapimodels.AttendanceView, err error)
	ListDay(date string) (list []attendanceapimodels.AttendanceView, err error)
	ExportMonth(filter attendanceapimodels.MonthFilter) (fileName string, file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: attendancestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store attendancestore.Provider
}

// CheckIn открывает рабочий день. Повторная отметка в тот же день - ошибка
func (i impl) CheckIn(userID string) (*attendanceapimodels.AttendanceView, error) {
	logger := log.WithField("user_id", userID)
	now := time.Now()
	date := now.Format(models.AttendanceDateFormat)
	rec, err := i.store.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return nil, errors.New("рабочий день уже открыт")
	}
	newRec := dbmodels.Attendance{
		UserID:  userID,
		Date:    date,
		CheckIn: &now,
		Status:  models.AttendanceWorkingStatus,
	}
	_, err = i.store.Create(newRec)
	if err != nil {
		logger.WithError(err).Error("ошибка открытия рабочего дня")
		return nil, errors.Wrap(err, "ошибка открытия рабочего дня")
	}
	logger.WithField("date", date).Info("рабочий день открыт")
	return i.Today(userID)
}

func (i impl) CheckOut(userID string) (*attendanceapimodels.AttendanceView, error) {
	logger := log.WithField("user_id", userID)
	now := time.Now()
	date := now.Format(models.AttendanceDateFormat)
	rec, err := i.store.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("рабочий день не открыт")
	}
	if rec.Status == models.AttendanceCompletedStatus {
		return nil, errors.New("рабочий день уже закрыт")
	}
	// открытый перерыв закрывается вместе с днем
	if rec.Status == models.AttendanceBreakStatus {
		err = i.store.CloseBreak(rec.ID, now)
		if err != nil {
			logger.WithError(err).Error("ошибка закрытия перерыва")
		}
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"check_out": now,
		"status":    models.AttendanceCompletedStatus,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка закрытия рабочего дня")
		return nil, errors.Wrap(err, "ошибка закрытия рабочего дня")
	}
	logger.WithField("date", date).Info("рабочий день закрыт")
	return i.Today(userID)
}

func (i impl) StartBreak(userID, reason string) error {
	now := time.Now()
	rec, err := i.todayRec(userID)
	if err != nil {
		return err
	}
	if rec.Status != models.AttendanceWorkingStatus {
		return errors.New("перерыв доступен только в открытом рабочем дне")
	}
	err = i.store.AddBreak(dbmodels.AttendanceBreak{
		AttendanceID: rec.ID,
		Start:        now,
		Reason:       reason,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка начала перерыва")
	}
	return i.store.Update(rec.ID, map[string]interface{}{
		"status": models.AttendanceBreakStatus,
	})
}

func (i impl) EndBreak(userID string) error {
	now := time.Now()
	rec, err := i.todayRec(userID)
	if err != nil {
		return err
	}
	if rec.Status != models.AttendanceBreakStatus {
		return errors.New("открытый перерыв не найден")
	}
	err = i.store.CloseBreak(rec.ID, now)
	if err != nil {
		return errors.Wrap(err, "ошибка завершения перерыва")
	}
	return i.store.Update(rec.ID, map[string]interface{}{
		"status": models.AttendanceWorkingStatus,
	})
}

func (i impl) todayRec(userID string) (*dbmodels.Attendance, error) {
	date := time.Now().Format(models.AttendanceDateFormat)
	rec, err := i.store.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("рабочий день не открыт")
	}
	return rec, nil
}

func (i impl) Today(userID string) (*attendanceapimodels.AttendanceView, error) {
	date := time.Now().Format(models.AttendanceDateFormat)
	rec, err := i.store.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) ListMonth(filter attendanceapimodels.MonthFilter) (list []attendanceapimodels.AttendanceView, err error) {
	err = filter.Validate()
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListByMonth(filter.UserID, filter.Month)
	if err != nil {
		return nil, err
	}
	list = make([]attendanceapimodels.AttendanceView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) ListDay(date string) (list []attendanceapimodels.AttendanceView, err error) {
	filter := attendanceapimodels.DayFilter{Date: date}
	err = filter.Validate()
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListByDate(date)
	if err != nil {
		return nil, err
	}
	list = make([]attendanceapimodels.AttendanceView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// ExportMonth - табель посещаемости за месяц в xlsx
func (i impl) ExportMonth(filter attendanceapimodels.MonthFilter) (fileName string, file *bytes.Buffer, err error) {
	err = filter.Validate()
	if err != nil {
		return "", nil, err
	}
	recList, err := i.store.ListByMonth(filter.UserID, filter.Month)
	if err != nil {
		return "", nil, err
	}
	file, err = xlsexport.Instance.ExportAttendance(recList)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка формирования табеля")
	}
	fileName = fmt.Sprintf("attendance_%v.xlsx", filter.Month)
	return fileName, file, nil
}
