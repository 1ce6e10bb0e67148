package resignationhandler

import (
	"fmt"
	"hrms-backend/db"
	notificationhandler "hrms-backend/lib/notification"
	resignationstore "hrms-backend/lib/resignation/store"
	usersstore "hrms-backend/lib/users/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	resignationapimodels "hrms-backend/models/api/resignation"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	File(userID string, data resignationapimodels.ResignationData) (id string, err error)
	Withdraw(userID string) error
	My(userID string) (*resignationapimodels.ResignationView, error)
	List() (list []resignationapimodels.ResignationView, err error)
	Get(id string) (*resignationapimodels.ResignationView, error)
	UpdateClearance(approverID, id string, data resignationapimodels.ClearanceData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      resignationstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	store      resignationstore.Provider
	usersStore usersstore.Provider
}

// File - подача заявления об увольнении. У сотрудника может быть
// только одно активное заявление
func (i impl) File(userID string, data resignationapimodels.ResignationData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	exist, err := i.store.GetByUser(userID)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", errors.New("заявление об увольнении уже подано")
	}
	rec := dbmodels.Resignation{
		UserID:                 userID,
		Reason:                 data.Reason,
		LastWorkingDay:         data.LastWorkingDay,
		NoticePeriodDays:       data.NoticePeriodDays,
		KnowledgeTransferTo:    data.KnowledgeTransferTo,
		KnowledgeTransferNotes: data.KnowledgeTransferNotes,
		AssetsReturned:         data.AssetsReturned,
		AssetNotes:             data.AssetNotes,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка подачи заявления об увольнении")
		return "", errors.Wrap(err, "ошибка подачи заявления")
	}
	logger.WithField("rec_id", id).Info("заявление об увольнении подано")
	i.notifyStaff(userID)
	return id, nil
}

func (i impl) notifyStaff(authorID string) {
	author, err := i.usersStore.GetByID(authorID)
	if err != nil || author == nil {
		return
	}
	message := fmt.Sprintf("Сотрудник %v подал заявление об увольнении", author.GetFullName())
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
			notificationhandler.Instance.Notify(rec.ID, models.NotificationResignationFiled, message, "")
		}
	}
}

// Withdraw - отзыв заявления. Возможен только пока обходной лист
// не тронут ни одним подразделением
func (i impl) Withdraw(userID string) error {
	logger := log.WithField("user_id", userID)
	rec, err := i.store.GetByUser(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("заявление не найдено")
	}
	if rec.OverallStatus() != models.ResignationPendingStatus {
		return errors.New("обработка заявления уже началась, отзыв невозможен")
	}
	err = i.store.Delete(rec.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка отзыва заявления")
		return errors.Wrap(err, "ошибка отзыва заявления")
	}
	logger.WithField("rec_id", rec.ID).Info("заявление об увольнении отозвано")
	return nil
}

func (i impl) My(userID string) (*resignationapimodels.ResignationView, error) {
	rec, err := i.store.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List() (list []resignationapimodels.ResignationView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]resignationapimodels.ResignationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Get(id string) (*resignationapimodels.ResignationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("заявление не найдено")
	}
	view := rec.ToModel()
	return &view, nil
}

// UpdateClearance фиксирует решение подразделения в обходном листе.
// Когда подписаны все четыре подразделения, сотрудник переводится в уволенные
func (i impl) UpdateClearance(approverID, id string, data resignationapimodels.ClearanceData) error {
	logger := log.
		WithField("approver_id", approverID).
		WithField("rec_id", id).
		WithField("department", data.Department)
	err := data.Validate()
	if err != nil {
		return err
	}
	dep := models.ClearanceDepartment(data.Department)
	if !dep.IsValid() {
		return errors.New("неизвестное подразделение")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("заявление не найдено")
	}
	clearance := rec.ClearanceByDepartment(dep)
	if clearance.Status.IsDecided() {
		return errors.New("подразделение уже вынесло решение")
	}
	status := models.ClearanceApprovedStatus
	if !data.Approve {
		status = models.ClearanceRejectedStatus
	}
	now := time.Now()
	prefix := clearancePrefix(dep)
	err = i.store.Update(id, map[string]interface{}{
		prefix + "status":      status,
		prefix + "approver_id": approverID,
		prefix + "notes":       data.Notes,
		prefix + "decided_at":  now,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления обходного листа")
		return errors.Wrap(err, "ошибка обновления обходного листа")
	}
	logger.WithField("status", status).Info("обходной лист обновлен")

	clearance.Status = status
	message := fmt.Sprintf("Подразделение %v обновило ваш обходной лист: %v", data.Department, status.ToHuman())
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationClearanceUpdated, message, "")

	if rec.OverallStatus() == models.ResignationApprovedStatus {
		err = i.usersStore.Update(rec.UserID, map[string]interface{}{
			"status": models.UserResignedStatus,
		})
		if err != nil {
			logger.WithError(err).Error("ошибка перевода сотрудника в уволенные")
			return errors.Wrap(err, "ошибка перевода сотрудника в уволенные")
		}
		logger.Info("увольнение согласовано всеми подразделениями")
	}
	return nil
}

func clearancePrefix(dep models.ClearanceDepartment) string {
	switch dep {
	case models.ClearanceReportingManager:
		return "manager_"
	case models.ClearanceIT:
		return "it_"
	case models.ClearanceAdmin:
		return "admin_"
	case models.ClearanceFinance:
		return "finance_"
	}
	return ""
}
