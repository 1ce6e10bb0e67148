package apiv1

import (
	"hrms-backend/controllers"
	notificationhandler "hrms-backend/lib/notification"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	notificationapimodels "hrms-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Post(":id/read", controller.markRead)
		router.Post("read-all", controller.markAllRead)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Последние уведомления текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   limit	query	int	false	"максимум записей"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	limit := ctx.QueryInt("limit")
	list, err := notificationhandler.Instance.List(userID, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Счетчик непрочитанных
// @Tags Уведомления
// @Description Количество непрочитанных уведомлений
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.UnreadCountView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	count, err := notificationhandler.Instance.UnreadCount(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.UnreadCountView{Count: count}))
}

// @Summary Отметка о прочтении
// @Tags Уведомления
// @Description Отметка уведомления прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид уведомления"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [post]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	if err := notificationhandler.Instance.MarkRead(userID, id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Прочитать все
// @Tags Уведомления
// @Description Отметка всех уведомлений прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/read-all [post]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if err := notificationhandler.Instance.MarkAllRead(userID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление уведомления
// @Tags Уведомления
// @Description Удаление уведомления
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид уведомления"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id} [delete]
func (c *notificationApiController) delete(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	if err := notificationhandler.Instance.Delete(userID, id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
