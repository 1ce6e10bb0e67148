package apiv1

import (
	"hrms-backend/controllers"
	teamhandler "hrms-backend/lib/team"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	teamapimodels "hrms-backend/models/api/team"

	"github.com/gofiber/fiber/v2"
)

type teamApiController struct {
	controllers.BaseAPIController
}

func InitTeamApiRouters(app *fiber.App) {
	controller := teamApiController{}
	app.Route("teams", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.StaffRequired())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список команд
// @Tags Команды
// @Description Список команд с составом
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.TeamView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams [get]
func (c *teamApiController) list(ctx *fiber.Ctx) error {
	list, err := teamhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Команда
// @Tags Команды
// @Description Команда с составом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид команды"
// @Success 200 {object} apimodels.Response{data=teamapimodels.TeamView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id} [get]
func (c *teamApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	view, err := teamhandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Создание команды
// @Tags Команды
// @Description Создание команды
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		teamapimodels.TeamData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams [post]
func (c *teamApiController) create(ctx *fiber.Ctx) error {
	var payload teamapimodels.TeamData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := teamhandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Редактирование команды
// @Tags Команды
// @Description Редактирование команды
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид команды"
// @Param	body				body		teamapimodels.TeamData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id} [put]
func (c *teamApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload teamapimodels.TeamData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := teamhandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление команды
// @Tags Команды
// @Description Удаление команды без сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид команды"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id} [delete]
func (c *teamApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := teamhandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
