package attendanceautocloseworker

import (
	"context"
	"hrms-backend/config"
	"hrms-backend/db"
	attendancestore "hrms-backend/lib/attendance/store"
	baseworker "hrms-backend/lib/utils/base-worker"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	"time"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("AttendanceAutoCloseWorker", time.Minute, time.Hour),
		store:    attendancestore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store attendancestore.Provider
}

// handle закрывает забытые рабочие дни прошедших дат.
// Временем ухода считается конец рабочего дня компании
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	today := time.Now().Format(models.AttendanceDateFormat)
	list, err := i.store.ListOpenBefore(today)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения списка незакрытых рабочих дней")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		recLogger := logger.
			WithField("user_id", rec.UserID).
			WithField("date", rec.Date)
		checkOut, err := i.dayEnd(rec.Date)
		if err != nil {
			recLogger.WithError(err).Error("Ошибка вычисления времени закрытия дня")
			continue
		}
		if rec.Status == models.AttendanceBreakStatus {
			err = i.store.CloseBreak(rec.ID, checkOut)
			if err != nil {
				recLogger.WithError(err).Error("Ошибка закрытия перерыва")
			}
		}
		err = i.store.Update(rec.ID, map[string]interface{}{
			"check_out": checkOut,
			"status":    models.AttendanceCompletedStatus,
		})
		if err != nil {
			recLogger.WithError(err).Error("Ошибка автозакрытия рабочего дня")
			continue
		}
		recLogger.Info("Рабочий день закрыт автоматически")
	}
}

func (i impl) dayEnd(date string) (time.Time, error) {
	day, err := time.ParseInLocation(models.AttendanceDateFormat, date, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	endsAt, err := time.Parse("15:04", config.Conf.Company.WorkDayEndsAt)
	if err != nil {
		endsAt = time.Date(0, 1, 1, 20, 0, 0, 0, time.UTC)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), endsAt.Hour(), endsAt.Minute(), 0, 0, time.Local), nil
}
