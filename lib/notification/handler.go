package notificationhandler

import (
	"hrms-backend/db"
	notificationstore "hrms-backend/lib/notification/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	connectionhub "hrms-backend/lib/ws/hub/connection-hub"
	"hrms-backend/models"
	notificationapimodels "hrms-backend/models/api/notification"
	dbmodels "hrms-backend/models/db"
	wsmodels "hrms-backend/models/ws"
	"time"

	log "github.com/sirupsen/logrus"
)

// лимит списка уведомлений по умолчанию
const defaultListLimit = 50

type Provider interface {
	Notify(userID string, code models.NotificationCode, message, leaveID string)
	NotifyMany(userIDs []string, code models.NotificationCode, message, leaveID string)
	List(userID string, limit int) (list []notificationapimodels.NotificationView, err error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	Delete(userID, id string) error
	DeleteReadBefore(moment time.Time) (int64, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: notificationstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store notificationstore.Provider
}

// Notify сохраняет уведомление и отправляет пуш в открытое ws-соединение.
// Доставка не гарантируется, ошибки не прерывают основную операцию
func (i impl) Notify(userID string, code models.NotificationCode, message, leaveID string) {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", string(code))
	rec := dbmodels.Notification{
		UserID:  userID,
		Code:    code,
		Message: message,
		LeaveID: leaveID,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
		return
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: userID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     string(code),
		Msg:      message,
		LeaveID:  leaveID,
	})
}

func (i impl) NotifyMany(userIDs []string, code models.NotificationCode, message, leaveID string) {
	for _, userID := range userIDs {
		i.Notify(userID, code, message, leaveID)
	}
}

func (i impl) List(userID string, limit int) (list []notificationapimodels.NotificationView, err error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	recList, err := i.store.ListByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	list = make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.UnreadCount(userID)
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}

func (i impl) MarkAllRead(userID string) error {
	return i.store.MarkAllRead(userID)
}

func (i impl) Delete(userID, id string) error {
	return i.store.Delete(userID, id)
}

func (i impl) DeleteReadBefore(moment time.Time) (int64, error) {
	return i.store.DeleteReadBefore(moment)
}
