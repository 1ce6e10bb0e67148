package apiv1

import (
	"hrms-backend/controllers"
	announcementhandler "hrms-backend/lib/announcement"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	announcementapimodels "hrms-backend/models/api/announcement"

	"github.com/gofiber/fiber/v2"
)

type announcementApiController struct {
	controllers.BaseAPIController
}

func InitAnnouncementApiRouters(app *fiber.App) {
	controller := announcementApiController{}
	app.Route("announcements", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Use(middleware.StaffRequired())
		router.Post("", controller.create)
		router.Get("all", controller.listAll)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Объявления
// @Tags Объявления
// @Description Объявления, адресованные роли текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]announcementapimodels.AnnouncementView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements [get]
func (c *announcementApiController) list(ctx *fiber.Ctx) error {
	role := middleware.GetUserRole(ctx)
	list, err := announcementhandler.Instance.ListForRole(role)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Публикация объявления
// @Tags Объявления
// @Description Публикация объявления с рассылкой уведомлений адресатам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		announcementapimodels.AnnouncementData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements [post]
func (c *announcementApiController) create(ctx *fiber.Ctx) error {
	authorID := middleware.GetUserID(ctx)
	var payload announcementapimodels.AnnouncementData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := announcementhandler.Instance.Create(authorID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Все объявления
// @Tags Объявления
// @Description Все объявления без учета адресата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]announcementapimodels.AnnouncementView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements/all [get]
func (c *announcementApiController) listAll(ctx *fiber.Ctx) error {
	list, err := announcementhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление объявления
// @Tags Объявления
// @Description Удаление объявления
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид объявления"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements/{id} [delete]
func (c *announcementApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := announcementhandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
