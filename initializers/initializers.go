package initializers

import (
	"context"
	"hrms-backend/config"
	"hrms-backend/fiberlog"
	announcementhandler "hrms-backend/lib/announcement"
	attendancehandler "hrms-backend/lib/attendance"
	attendanceautocloseworker "hrms-backend/lib/attendance/autoclose-worker"
	authhandler "hrms-backend/lib/auth"
	emailverify "hrms-backend/lib/email-verify"
	xlsexport "hrms-backend/lib/export/xls"
	filestorage "hrms-backend/lib/file-storage"
	financehandler "hrms-backend/lib/finance"
	leavehandler "hrms-backend/lib/leave"
	leaveallotmenthandler "hrms-backend/lib/leave-allotment"
	leavetypeprovider "hrms-backend/lib/leave-type"
	notificationhandler "hrms-backend/lib/notification"
	notificationcleanupworker "hrms-backend/lib/notification/cleanup-worker"
	resignationhandler "hrms-backend/lib/resignation"
	teamhandler "hrms-backend/lib/team"
	usershandler "hrms-backend/lib/users/handler"
	connectionhub "hrms-backend/lib/ws/hub/connection-hub"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	emailverify.Instance = emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification)
	filestorage.NewHandler()
	xlsexport.NewHandler()
	notificationhandler.NewHandler()
	authhandler.NewHandler()
	usershandler.NewHandler()
	teamhandler.NewHandler()
	leavetypeprovider.NewHandler()
	leavehandler.NewHandler()
	leaveallotmenthandler.NewHandler()
	attendancehandler.NewHandler()
	financehandler.NewHandler()
	resignationhandler.NewHandler()
	announcementhandler.NewHandler()
	go initWorkers(ctx)
}

// запускаем с промежутком в 10 сек чтоб размыть нагрузку
func initWorkers(ctx context.Context) {
	// Задача автозакрытия забытых рабочих дней
	attendanceautocloseworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		// Задача удаления устаревших уведомлений
		notificationcleanupworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
