package usershandler

import (
	"hrms-backend/db"
	counterstore "hrms-backend/lib/counter/store"
	emailverify "hrms-backend/lib/email-verify"
	notificationhandler "hrms-backend/lib/notification"
	"hrms-backend/lib/smtp"
	usersstore "hrms-backend/lib/users/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	employeeapimodels "hrms-backend/models/api/employee"
	dbmodels "hrms-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data employeeapimodels.UserData) (id string, err error)
	Approve(id string) error
	Get(id string) (*employeeapimodels.UserView, error)
	Find(filter employeeapimodels.UserFind, pagination apimodels.Pagination) (list []employeeapimodels.UserView, rowCount int64, err error)
	Update(id string, data employeeapimodels.UserData) error
	UpdateProfile(userID string, data employeeapimodels.ProfileData) error
	SetStatus(id string, status models.UserStatus) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        usersstore.NewInstance(db.DB),
		counterStore: counterstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"counterStore", instance.counterStore,
	)
	Instance = instance
}

type impl struct {
	store        usersstore.Provider
	counterStore counterstore.Provider
}

// Create - заведение сотрудника админом или HR.
// Табельный номер выдается из счетчика, учетная запись сразу одобрена
func (i impl) Create(data employeeapimodels.UserData) (id string, err error) {
	logger := log.WithField("email", data.Email)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	role := models.UserRole(data.Role)
	if data.Role == "" {
		role = models.UserRoleEmployee
	}
	if !role.IsValid() {
		return "", errors.New("неизвестная роль")
	}
	employeeNumber, err := i.counterStore.NextValue(dbmodels.EmployeeNumberCounter)
	if err != nil {
		logger.WithError(err).Error("ошибка получения табельного номера")
		return "", errors.Wrap(err, "ошибка получения табельного номера")
	}
	password := data.Password
	if password == "" {
		// временный пароль, сотрудник сменит через сброс
		password = employeeNumber
	}
	rec := dbmodels.User{
		EmployeeNumber: employeeNumber,
		Email:          strings.ToLower(strings.TrimSpace(data.Email)),
		Password:       authutils.GetMD5Hash(password),
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		MiddleName:     data.MiddleName,
		PhoneNumber:    data.PhoneNumber,
		Role:           role,
		Status:         models.UserWorkingStatus,
		IsApproved:     true,
		JobTitle:       data.JobTitle,
		JoinDate:       time.Now(),
	}
	if data.TeamID != "" {
		rec.TeamID = &data.TeamID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания сотрудника")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("employee_number", employeeNumber).
		Info("сотрудник создан")
	return id, nil
}

// Approve одобряет самостоятельно зарегистрированного сотрудника
// и присваивает ему табельный номер
func (i impl) Approve(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("сотрудник не найден")
	}
	if rec.IsApproved {
		return errors.New("учетная запись уже одобрена")
	}
	employeeNumber, err := i.counterStore.NextValue(dbmodels.EmployeeNumberCounter)
	if err != nil {
		logger.WithError(err).Error("ошибка получения табельного номера")
		return errors.Wrap(err, "ошибка получения табельного номера")
	}
	err = i.store.Update(id, map[string]interface{}{
		"is_approved":     true,
		"employee_number": employeeNumber,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка одобрения учетной записи")
		return err
	}
	logger.WithField("employee_number", employeeNumber).Info("учетная запись одобрена")
	notificationhandler.Instance.Notify(id, models.NotificationAccountApproved,
		"Ваша учетная запись одобрена, вам доступен вход в систему", "")
	return nil
}

func (i impl) Get(id string) (*employeeapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("сотрудник не найден")
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) Find(filter employeeapimodels.UserFind, pagination apimodels.Pagination) (list []employeeapimodels.UserView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recList, rowCount, err := i.store.Find(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, data employeeapimodels.UserData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("сотрудник не найден")
	}
	updMap := map[string]interface{}{
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"middle_name":  data.MiddleName,
		"phone_number": data.PhoneNumber,
		"job_title":    data.JobTitle,
	}
	if data.Role != "" {
		role := models.UserRole(data.Role)
		if !role.IsValid() {
			return errors.New("неизвестная роль")
		}
		updMap["role"] = role
	}
	if data.TeamID != "" {
		updMap["team_id"] = data.TeamID
	}
	newEmail := strings.ToLower(strings.TrimSpace(data.Email))
	emailChanged := newEmail != "" && newEmail != rec.Email
	if emailChanged {
		if smtp.Instance.IsConfigured() {
			// почта меняется после подтверждения по ссылке
			updMap["new_email"] = newEmail
		} else {
			updMap["email"] = newEmail
			updMap["is_email_verified"] = true
		}
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	if emailChanged && smtp.Instance.IsConfigured() {
		// при смене почты отправляем подтверждение на новый адрес
		err = emailverify.Instance.SendVerifyCode(newEmail)
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) UpdateProfile(userID string, data employeeapimodels.ProfileData) error {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("сотрудник не найден")
	}
	return i.store.Update(userID, map[string]interface{}{
		"phone_number": data.PhoneNumber,
		"address":      data.Address,
		"bank_name":    data.BankName,
		"bank_account": data.BankAccount,
		"tax_number":   data.TaxNumber,
	})
}

func (i impl) SetStatus(id string, status models.UserStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("сотрудник не найден")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": status,
	})
}
