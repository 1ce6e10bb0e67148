package leavehandler

import (
	"fmt"
	"hrms-backend/config"
	"hrms-backend/db"
	leavestore "hrms-backend/lib/leave/store"
	leavetypestore "hrms-backend/lib/leave-type/store"
	notificationhandler "hrms-backend/lib/notification"
	"hrms-backend/lib/smtp"
	usersstore "hrms-backend/lib/users/store"
	"hrms-backend/lib/utils/helpers"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateRequest(userID string, data leaveapimodels.LeaveRequestData) (id string, err error)
	Decide(approverID, id string, approve bool, comment string) error
	ListRequests(approverID string, filter leaveapimodels.LeaveFilter) (list []leaveapimodels.LeaveView, err error)
	ListMy(userID string) (list []leaveapimodels.LeaveView, err error)
	Delete(userID string, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          leavestore.NewInstance(db.DB),
		leaveTypeStore: leavetypestore.NewInstance(db.DB),
		usersStore:     usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"leaveTypeStore", instance.leaveTypeStore,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	store          leavestore.Provider
	leaveTypeStore leavetypestore.Provider
	usersStore     usersstore.Provider
}

func (i impl) CreateRequest(userID string, data leaveapimodels.LeaveRequestData) (id string, err error) {
	logger := log.
		WithField("user_id", userID).
		WithField("leave_type_id", data.LeaveTypeID)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	leaveType, err := i.leaveTypeStore.GetByID(data.LeaveTypeID)
	if err != nil {
		return "", err
	}
	if leaveType == nil {
		return "", errors.New("тип отпуска не найден")
	}
	days := helpers.DaysBetween(data.StartDate, data.EndDate)
	if leaveType.ShortDay {
		// отгул берется в пределах одного дня, количество задается часами
		if days > 1 {
			return "", errors.New("отгул оформляется в пределах одного дня")
		}
		if data.Hours == 0 && data.Minutes == 0 {
			return "", errors.New("для отгула нужно указать время")
		}
		days = 0
	} else {
		if leaveType.MaxDays > 0 && days > leaveType.MaxDays {
			return "", errors.Errorf("превышен лимит типа отпуска: максимум %v дней", leaveType.MaxDays)
		}
	}
	rec := dbmodels.Leave{
		UserID:      userID,
		LeaveTypeID: leaveType.ID,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Days:        days,
		Hours:       data.Hours,
		Minutes:     data.Minutes,
		Reason:      data.Reason,
		Status:      models.LeavePendingStatus,
		Kind:        models.LeavePersonalKind,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания заявки на отпуск")
		return "", errors.Wrap(err, "ошибка создания заявки")
	}
	logger.WithField("rec_id", id).Info("заявка на отпуск создана")
	i.notifyStaff(userID, id, leaveType.Name)
	return id, nil
}

// notifyStaff уведомляет администраторов и HR о новой заявке
func (i impl) notifyStaff(authorID, leaveID, leaveTypeName string) {
	author, err := i.usersStore.GetByID(authorID)
	if err != nil || author == nil {
		return
	}
	authorName := author.GetFullName()
	for _, role := range []models.UserRole{models.UserRoleAdmin, models.UserRoleHR} {
		staff, err := i.usersStore.ListByRole(string(role))
		if err != nil {
			log.WithError(err).Error("ошибка получения списка согласующих")
			continue
		}
		for _, rec := range staff {
			if rec.ID == authorID {
				continue
			}
			notificationhandler.Instance.Notify(rec.ID, models.NotificationLeaveRequested,
				fmt.Sprintf("Новая заявка на отпуск (%v) от %v", leaveTypeName, authorName), leaveID)
		}
	}
}

func (i impl) Decide(approverID, id string, approve bool, comment string) error {
	logger := log.
		WithField("approver_id", approverID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("заявка не найдена")
	}
	if rec.Kind != models.LeavePersonalKind || rec.SystemGenerated {
		return errors.New("обработать можно только заявку сотрудника")
	}
	if rec.UserID == approverID {
		return errors.New("нельзя обработать собственную заявку")
	}
	status := models.LeaveApprovedStatus
	rejectReason := ""
	if !approve {
		status = models.LeaveRejectedStatus
		rejectReason = comment
	}
	updated, err := i.store.SetDecision(id, status, approverID, rejectReason)
	if err != nil {
		logger.WithError(err).Error("ошибка обработки заявки на отпуск")
		return errors.Wrap(err, "ошибка обработки заявки")
	}
	if !updated {
		return errors.New("заявка уже обработана")
	}
	logger.WithField("status", status).Info("заявка на отпуск обработана")
	i.notifyDecision(rec, status, comment)
	return nil
}

// notifyDecision уведомляет автора заявки о решении, письмо отправляется
// по возможности и не влияет на результат операции
func (i impl) notifyDecision(rec *dbmodels.Leave, status models.LeaveStatus, comment string) {
	code := models.NotificationLeaveApproved
	message := "Ваша заявка на отпуск согласована"
	if status == models.LeaveRejectedStatus {
		code = models.NotificationLeaveRejected
		message = "Ваша заявка на отпуск отклонена"
		if comment != "" {
			message = fmt.Sprintf("%v: %v", message, comment)
		}
	}
	notificationhandler.Instance.Notify(rec.UserID, code, message, rec.ID)
	if rec.User == nil || rec.User.Email == "" {
		return
	}
	err := smtp.Instance.SendEMail(config.Conf.Smtp.EmailSendVerification, rec.User.Email,
		message, "Заявка на отпуск")
	if err != nil {
		log.WithError(err).
			WithField("rec_id", rec.ID).
			Error("ошибка отправки письма о решении по заявке")
	}
}

func (i impl) ListRequests(approverID string, filter leaveapimodels.LeaveFilter) (list []leaveapimodels.LeaveView, err error) {
	// собственные заявки согласующего скрыты, их обрабатывает второй согласующий
	recList, err := i.store.ListRequests(filter, approverID)
	if err != nil {
		return nil, err
	}
	list = make([]leaveapimodels.LeaveView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) ListMy(userID string) (list []leaveapimodels.LeaveView, err error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list = make([]leaveapimodels.LeaveView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Delete(userID string, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("заявка не найдена")
	}
	if rec.UserID != userID {
		return errors.New("заявка принадлежит другому сотруднику")
	}
	if rec.Status.IsDecided() {
		return errors.New("обработанную заявку удалить нельзя")
	}
	return i.store.Delete(id)
}
