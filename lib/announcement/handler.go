package announcementhandler

import (
	"fmt"
	"hrms-backend/db"
	announcementstore "hrms-backend/lib/announcement/store"
	notificationhandler "hrms-backend/lib/notification"
	usersstore "hrms-backend/lib/users/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	announcementapimodels "hrms-backend/models/api/announcement"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(authorID string, data announcementapimodels.AnnouncementData) (id string, err error)
	ListForRole(role models.UserRole) (list []announcementapimodels.AnnouncementView, err error)
	List() (list []announcementapimodels.AnnouncementView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      announcementstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	store      announcementstore.Provider
	usersStore usersstore.Provider
}

// Create публикует объявление и рассылает уведомления адресатам
func (i impl) Create(authorID string, data announcementapimodels.AnnouncementData) (id string, err error) {
	logger := log.WithField("author_id", authorID)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	for _, roleStr := range data.Audience {
		if !models.UserRole(roleStr).IsValid() {
			return "", errors.Errorf("неизвестная роль в списке адресатов: %v", roleStr)
		}
	}
	rec := dbmodels.Announcement{
		Title:    data.Title,
		Body:     data.Body,
		AuthorID: authorID,
		Audience: data.Audience,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка публикации объявления")
		return "", errors.Wrap(err, "ошибка публикации объявления")
	}
	logger.WithField("rec_id", id).Info("объявление опубликовано")
	i.notifyAudience(authorID, data)
	return id, nil
}

func (i impl) notifyAudience(authorID string, data announcementapimodels.AnnouncementData) {
	roles := data.Audience
	if len(roles) == 0 {
		roles = []string{
			string(models.UserRoleAdmin),
			string(models.UserRoleHR),
			string(models.UserRoleEmployee),
		}
	}
	message := fmt.Sprintf("Новое объявление: %v", data.Title)
	notified := map[string]bool{authorID: true}
	for _, role := range roles {
		list, err := i.usersStore.ListByRole(role)
		if err != nil {
			log.WithError(err).Error("ошибка получения списка адресатов объявления")
			continue
		}
		for _, rec := range list {
			if notified[rec.ID] {
				continue
			}
			notified[rec.ID] = true
			notificationhandler.Instance.Notify(rec.ID, models.NotificationAnnouncement, message, "")
		}
	}
}

func (i impl) ListForRole(role models.UserRole) (list []announcementapimodels.AnnouncementView, err error) {
	recList, err := i.store.ListForRole(string(role))
	if err != nil {
		return nil, err
	}
	list = make([]announcementapimodels.AnnouncementView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) List() (list []announcementapimodels.AnnouncementView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]announcementapimodels.AnnouncementView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("объявление не найдено")
	}
	return i.store.Delete(id)
}
