package db

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Team{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Team")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailVerify{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmailVerify")
	}
	if err := DB.AutoMigrate(&dbmodels.Counter{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Counter")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveType{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LeaveType")
	}
	if err := DB.AutoMigrate(&dbmodels.Leave{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Leave")
	}
	if err := DB.AutoMigrate(&dbmodels.Attendance{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Attendance")
	}
	if err := DB.AutoMigrate(&dbmodels.AttendanceBreak{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AttendanceBreak")
	}
	if err := DB.AutoMigrate(&dbmodels.Finance{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Finance")
	}
	if err := DB.AutoMigrate(&dbmodels.Resignation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Resignation")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.Announcement{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Announcement")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
