package notificationcleanupworker

import (
	"context"
	"hrms-backend/db"
	notificationstore "hrms-backend/lib/notification/store"
	baseworker "hrms-backend/lib/utils/base-worker"
	"time"
)

// прочитанные уведомления старше этого срока удаляются
const retentionPeriod = 30 * 24 * time.Hour

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("NotificationCleanupWorker", 30*time.Second, 12*time.Hour),
		store:    notificationstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store notificationstore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	deadline := time.Now().Add(-retentionPeriod)
	deleted, err := i.store.DeleteReadBefore(deadline)
	if err != nil {
		logger.WithError(err).Error("Ошибка удаления устаревших уведомлений")
		return
	}
	if deleted > 0 {
		logger.Infof("Удалено устаревших уведомлений: %v", deleted)
	}
}
