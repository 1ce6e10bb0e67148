package main

import (
	"context"
	"fmt"
	"hrms-backend/config"
	apiv1 "hrms-backend/controllers/v1"
	"hrms-backend/fiberlog"
	"hrms-backend/initializers"
	"hrms-backend/lib/ws"
	"hrms-backend/middleware"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())
	// обычные запросы ограничены 10MB, загрузка документов - лимитом сервера
	app.Use(middleware.WithBodyLimit(10 * 1024 * 1024))
	if config.Conf.App.ErrNotifyWebhook != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyWebhook))
	}

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitUsersApiRouters(apiV1)
	apiv1.InitTeamApiRouters(apiV1)
	apiv1.InitLeaveTypeApiRouters(apiV1)
	apiv1.InitLeaveApiRouters(apiV1)
	apiv1.InitLeaveAllotmentApiRouters(apiV1)
	apiv1.InitAttendanceApiRouters(apiV1)
	apiv1.InitFinanceApiRouters(apiV1)
	apiv1.InitResignationApiRouters(apiV1)
	apiv1.InitNotificationApiRouters(apiV1)
	apiv1.InitAnnouncementApiRouters(apiV1)
	apiv1.InitFilesApiRouters(apiV1)

	//ws пуши
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
