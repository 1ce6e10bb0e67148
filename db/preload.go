package db

import (
	"hrms-backend/config"
	counterstore "hrms-backend/lib/counter/store"
	leavetypestore "hrms-backend/lib/leave-type/store"
	usersstore "hrms-backend/lib/users/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
	addCounters()
	fillLeaveTypes()
}

func addAdmin() {
	if config.Conf.Preload.AdminEmail == "" {
		log.Warn("администратор не добавлен, отсутствует настройка PRELOAD_ADMIN_EMAIL")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Preload.AdminEmail)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Email:           config.Conf.Preload.AdminEmail,
		Password:        authutils.GetMD5Hash(config.Conf.Preload.AdminPassword),
		FirstName:       "Admin",
		LastName:        "Admin",
		Role:            models.UserRoleAdmin,
		Status:          models.UserWorkingStatus,
		IsApproved:      true,
		IsEmailVerified: true,
		JoinDate:        time.Now(),
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}

func addCounters() {
	store := counterstore.NewInstance(DB)
	err := store.EnsureExist(dbmodels.Counter{
		Name:    dbmodels.EmployeeNumberCounter,
		Prefix:  "EMP",
		Padding: 4,
	})
	if err != nil {
		log.WithError(err).Error("ошибка добавления счетчика табельных номеров")
	}
}

var defaultLeaveTypes = []dbmodels.LeaveType{
	{Name: "Ежегодный отпуск", Description: "Оплачиваемый ежегодный отпуск", MaxDays: 28},
	{Name: "Больничный", Description: "Отсутствие по болезни", MaxDays: 14},
	{Name: "Отпуск без содержания", Description: "Отпуск за свой счет", MaxDays: 14},
	{Name: "Отгул", Description: "Короткое отсутствие в течение дня", ShortDay: true},
}

func fillLeaveTypes() {
	store := leavetypestore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка проверки справочника типов отпусков")
		return
	}
	if count != 0 {
		return
	}
	for _, rec := range defaultLeaveTypes {
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).Error("ошибка добавления типа отпуска")
		}
	}
	log.Info("справочник типов отпусков заполнен значениями по умолчанию")
}
