package apiv1

import (
	"hrms-backend/controllers"
	leaveallotmenthandler "hrms-backend/lib/leave-allotment"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	leaveapimodels "hrms-backend/models/api/leave"

	"github.com/gofiber/fiber/v2"
)

type leaveAllotmentApiController struct {
	controllers.BaseAPIController
}

func InitLeaveAllotmentApiRouters(app *fiber.App) {
	controller := leaveAllotmentApiController{}
	app.Route("leave-allotments", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("", controller.bulkAllot)
		router.Put("", controller.replace)
		router.Get("", controller.list)
	})
}

// @Summary Пакетное начисление отпусков
// @Tags Начисления отпусков
// @Description Пакетное начисление отпусков сотрудникам, итог по каждой позиции в отчете
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.AllotmentBulkRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.AllotmentReport}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-allotments [post]
func (c *leaveAllotmentApiController) bulkAllot(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload leaveapimodels.AllotmentBulkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	report, err := leaveallotmenthandler.Instance.BulkAllot(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// @Summary Замена начислений сотрудника
// @Tags Начисления отпусков
// @Description Замена набора начислений сотрудника одной транзакцией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.AllotmentEditRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-allotments [put]
func (c *leaveAllotmentApiController) replace(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload leaveapimodels.AllotmentEditRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := leaveallotmenthandler.Instance.ReplaceForUser(userID, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Список начислений
// @Tags Начисления отпусков
// @Description Список начислений, опционально по сотруднику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   user_id	query	string	false	"ид сотрудника"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave-allotments [get]
func (c *leaveAllotmentApiController) list(ctx *fiber.Ctx) error {
	userID := ctx.Query("user_id")
	list, err := leaveallotmenthandler.Instance.List(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
