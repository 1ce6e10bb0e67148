package apiv1

import (
	"hrms-backend/controllers"
	leavehandler "hrms-backend/lib/leave"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	leaveapimodels "hrms-backend/models/api/leave"

	"github.com/gofiber/fiber/v2"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("leaves", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Get("my", controller.my)
		router.Delete(":id", controller.delete)
		router.Use(middleware.StaffRequired())
		router.Post("find", controller.find)
		router.Post(":id/approve", controller.approve)
		router.Post(":id/reject", controller.reject)
	})
}

// @Summary Подача заявки на отпуск
// @Tags Отпуска
// @Description Подача заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.LeaveRequestData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload leaveapimodels.LeaveRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leavehandler.Instance.CreateRequest(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Мои заявки и начисления
// @Tags Отпуска
// @Description Все записи отпусков текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/my [get]
func (c *leaveApiController) my(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := leavehandler.Instance.ListMy(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление своей заявки
// @Tags Отпуска
// @Description Удаление своей необработанной заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид заявки"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id} [delete]
func (c *leaveApiController) delete(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	if err := leavehandler.Instance.Delete(userID, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Список заявок на обработку
// @Tags Отпуска
// @Description Заявки сотрудников, собственные заявки согласующего скрыты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.LeaveFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/find [post]
func (c *leaveApiController) find(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload leaveapimodels.LeaveFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := leavehandler.Instance.ListRequests(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Согласование заявки
// @Tags Отпуска
// @Description Согласование заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид заявки"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id}/approve [post]
func (c *leaveApiController) approve(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	if err := leavehandler.Instance.Decide(userID, id, true, ""); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Отклонение заявки
// @Tags Отпуска
// @Description Отклонение заявки на отпуск с комментарием
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид заявки"
// @Param	body				body		leaveapimodels.DecisionRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id}/reject [post]
func (c *leaveApiController) reject(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	var payload leaveapimodels.DecisionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := leavehandler.Instance.Decide(userID, id, false, payload.Comment); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
