package apiv1

import (
	"hrms-backend/controllers"
	resignationhandler "hrms-backend/lib/resignation"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	resignationapimodels "hrms-backend/models/api/resignation"

	"github.com/gofiber/fiber/v2"
)

type resignationApiController struct {
	controllers.BaseAPIController
}

func InitResignationApiRouters(app *fiber.App) {
	controller := resignationApiController{}
	app.Route("resignations", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.file)
		router.Delete("my", controller.withdraw)
		router.Get("my", controller.my)
		router.Use(middleware.StaffRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id/clearance", controller.updateClearance)
	})
}

// @Summary Подача заявления об увольнении
// @Tags Увольнения
// @Description Подача заявления об увольнении
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		resignationapimodels.ResignationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resignations [post]
func (c *resignationApiController) file(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload resignationapimodels.ResignationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := resignationhandler.Instance.File(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Отзыв заявления
// @Tags Увольнения
// @Description Отзыв заявления, пока обработка не началась
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resignations/my [delete]
func (c *resignationApiController) withdraw(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if err := resignationhandler.Instance.Withdraw(userID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Мое заявление
// @Tags Увольнения
// @Description Заявление текущего сотрудника с обходным листом
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=resignationapimodels.ResignationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resignations/my [get]
func (c *resignationApiController) my(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := resignationhandler.Instance.My(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список заявлений
// @Tags Увольнения
// @Description Все заявления об увольнении
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]resignationapimodels.ResignationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resignations [get]
func (c *resignationApiController) list(ctx *fiber.Ctx) error {
	list, err := resignationhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Заявление по ид
// @Tags Увольнения
// @Description Заявление об увольнении с обходным листом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид заявления"
// @Success 200 {object} apimodels.Response{data=resignationapimodels.ResignationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resignations/{id} [get]
func (c *resignationApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	view, err := resignationhandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Решение по обходному листу
// @Tags Увольнения
// @Description Решение подразделения по обходному листу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид заявления"
// @Param	body				body		resignationapimodels.ClearanceData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resignations/{id}/clearance [put]
func (c *resignationApiController) updateClearance(ctx *fiber.Ctx) error {
	approverID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	var payload resignationapimodels.ClearanceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := resignationhandler.Instance.UpdateClearance(approverID, id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
