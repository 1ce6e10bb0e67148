package leaveallotmenthandler

import (
	"fmt"
	"hrms-backend/db"
	leavestore "hrms-backend/lib/leave/store"
	leavetypestore "hrms-backend/lib/leave-type/store"
	notificationhandler "hrms-backend/lib/notification"
	usersstore "hrms-backend/lib/users/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	BulkAllot(allotterID string, data leaveapimodels.AllotmentBulkRequest) (report leaveapimodels.AllotmentReport, err error)
	ReplaceForUser(allotterID string, data leaveapimodels.AllotmentEditRequest) error
	List(userID string) (list []leaveapimodels.LeaveView, err error)
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

// BulkAllot создает начисления пакетом. Ошибка отдельного начисления не
// прерывает пакет, итог по каждой позиции попадает в отчет
func (i impl) BulkAllot(allotterID string, data leaveapimodels.AllotmentBulkRequest) (report leaveapimodels.AllotmentReport, err error) {
	logger := log.WithField("allotter_id", allotterID)
	if len(data.Items) == 0 {
		return report, errors.New("не указаны начисления")
	}
	for idx, item := range data.Items {
		err := i.allotOne(allotterID, item)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("начисление №%v: %v", idx+1, err))
			continue
		}
		report.Created++
	}
	logger.
		WithField("created", report.Created).
		WithField("failed", report.Failed).
		Info("пакетное начисление отпусков выполнено")
	return report, nil
}

func (i impl) allotOne(allotterID string, item leaveapimodels.AllotmentItem) error {
	err := item.Validate()
	if err != nil {
		return err
	}
	user, err := i.usersStore.GetByID(item.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("сотрудник не найден")
	}
	leaveType, err := i.leaveTypeStore.GetByID(item.LeaveTypeID)
	if err != nil {
		return err
	}
	if leaveType == nil {
		return errors.New("тип отпуска не найден")
	}
	err = checkTypeKind(*leaveType, item)
	if err != nil {
		return err
	}
	_, err = i.store.Create(i.buildRecord(allotterID, item))
	if err != nil {
		return err
	}
	notificationhandler.Instance.Notify(item.UserID, models.NotificationLeaveAllotted,
		fmt.Sprintf("Вам начислен отпуск: %v", leaveType.Name), "")
	return nil
}

// checkTypeKind сверяет количество с типом отпуска: отгул начисляется
// часами и минутами в пределах дня, обычный отпуск - целыми днями
func checkTypeKind(leaveType dbmodels.LeaveType, item leaveapimodels.AllotmentItem) error {
	if leaveType.ShortDay {
		if item.Hours == 0 && item.Minutes == 0 {
			return errors.New("для отгула нужно указать время")
		}
		if item.Days != 0 {
			return errors.New("отгул начисляется часами, а не днями")
		}
		return nil
	}
	if item.Days <= 0 {
		return errors.New("количество дней должно быть положительным")
	}
	return nil
}

// buildRecord - запись начисления, согласование не требуется
func (i impl) buildRecord(allotterID string, item leaveapimodels.AllotmentItem) dbmodels.Leave {
	now := time.Now()
	return dbmodels.Leave{
		UserID:      item.UserID,
		LeaveTypeID: item.LeaveTypeID,
		Days:        item.Days,
		Hours:       item.Hours,
		Minutes:     item.Minutes,
		Status:      models.LeaveApprovedStatus,
		Kind:        models.LeaveAllottedKind,
		AllottedBy:  allotterID,
		DecidedBy:   allotterID,
		DecidedAt:   &now,
	}
}

// ReplaceForUser заменяет начисления сотрудника по указанным типам отпуска.
// Удаление старых записей и вставка новых идут одной транзакцией,
// промежуточное состояние наружу не видно
func (i impl) ReplaceForUser(allotterID string, data leaveapimodels.AllotmentEditRequest) error {
	logger := log.
		WithField("allotter_id", allotterID).
		WithField("user_id", data.UserID)
	err := data.Validate()
	if err != nil {
		return err
	}
	user, err := i.usersStore.GetByID(data.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("сотрудник не найден")
	}
	leaveTypeIDs := make([]string, 0, len(data.Items))
	recList := make([]dbmodels.Leave, 0, len(data.Items))
	for _, item := range data.Items {
		item.UserID = data.UserID
		leaveType, err := i.leaveTypeStore.GetByID(item.LeaveTypeID)
		if err != nil {
			return err
		}
		if leaveType == nil {
			return errors.Errorf("тип отпуска %v не найден", item.LeaveTypeID)
		}
		if err = checkTypeKind(*leaveType, item); err != nil {
			return err
		}
		leaveTypeIDs = append(leaveTypeIDs, item.LeaveTypeID)
		recList = append(recList, i.buildRecord(allotterID, item))
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := leavestore.NewInstance(tx)
		err := txStore.DeleteAllotments(data.UserID, leaveTypeIDs)
		if err != nil {
			return err
		}
		return txStore.CreateBulk(recList)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка замены начислений")
		return errors.Wrap(err, "ошибка замены начислений")
	}
	logger.WithField("count", len(recList)).Info("начисления сотрудника заменены")
	notificationhandler.Instance.Notify(data.UserID, models.NotificationLeaveAllotted,
		"Ваши начисления отпусков обновлены", "")
	return nil
}

func (i impl) List(userID string) (list []leaveapimodels.LeaveView, err error) {
	recList, err := i.store.ListAllotments(userID)
	if err != nil {
		return nil, err
	}
	list = make([]leaveapimodels.LeaveView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}
