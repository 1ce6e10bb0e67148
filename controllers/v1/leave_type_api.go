package apiv1

import (
	"hrms-backend/controllers"
	leavetypeprovider "hrms-backend/lib/leave-type"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	leaveapimodels "hrms-backend/models/api/leave"

	"github.com/gofiber/fiber/v2"
)

type leaveTypeApiController struct {
	controllers.BaseAPIController
}

func InitLeaveTypeApiRouters(app *fiber.App) {
	controller := leaveTypeApiController{}
	app.Route("leave-types", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.StaffRequired())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список типов отпусков
// @Tags Типы отпусков
// @Description Список типов отпусков
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveTypeView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-types [get]
func (c *leaveTypeApiController) list(ctx *fiber.Ctx) error {
	list, err := leavetypeprovider.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Тип отпуска
// @Tags Типы отпусков
// @Description Тип отпуска по ид
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид типа"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-types/{id} [get]
func (c *leaveTypeApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	item, err := leavetypeprovider.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Создание типа отпуска
// @Tags Типы отпусков
// @Description Создание типа отпуска
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.LeaveTypeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-types [post]
func (c *leaveTypeApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leavetypeprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Редактирование типа отпуска
// @Tags Типы отпусков
// @Description Редактирование типа отпуска
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид типа"
// @Param	body				body		leaveapimodels.LeaveTypeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-types/{id} [put]
func (c *leaveTypeApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload leaveapimodels.LeaveTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := leavetypeprovider.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удаление типа отпуска
// @Tags Типы отпусков
// @Description Удаление типа отпуска
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид типа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-types/{id} [delete]
func (c *leaveTypeApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := leavetypeprovider.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
