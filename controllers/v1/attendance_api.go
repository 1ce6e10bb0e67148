package apiv1

import (
	"hrms-backend/controllers"
	attendancehandler "hrms-backend/lib/attendance"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	attendanceapimodels "hrms-backend/models/api/attendance"

	"github.com/gofiber/fiber/v2"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("check-in", controller.checkIn)
		router.Post("check-out", controller.checkOut)
		router.Post("break/start", controller.startBreak)
		router.Post("break/end", controller.endBreak)
		router.Get("today", controller.today)
		router.Get("my", controller.my)
		router.Use(middleware.StaffRequired())
		router.Post("find", controller.find)
		router.Get("day/:date", controller.day)
		router.Post("export", controller.export)
	})
}

// @Summary Отметка прихода
// @Tags Посещаемость
// @Description Открытие рабочего дня
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/check-in [post]
func (c *attendanceApiController) checkIn(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := attendancehandler.Instance.CheckIn(userID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отметка ухода
// @Tags Посещаемость
// @Description Закрытие рабочего дня
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/check-out [post]
func (c *attendanceApiController) checkOut(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := attendancehandler.Instance.CheckOut(userID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Начало перерыва
// @Tags Посещаемость
// @Description Начало перерыва в открытом рабочем дне
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.BreakRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/break/start [post]
func (c *attendanceApiController) startBreak(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload attendanceapimodels.BreakRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := attendancehandler.Instance.StartBreak(userID, payload.Reason); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Завершение перерыва
// @Tags Посещаемость
// @Description Завершение открытого перерыва
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/break/end [post]
func (c *attendanceApiController) endBreak(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if err := attendancehandler.Instance.EndBreak(userID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Текущий рабочий день
// @Tags Посещаемость
// @Description Состояние рабочего дня текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/today [get]
func (c *attendanceApiController) today(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := attendancehandler.Instance.Today(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Моя посещаемость за месяц
// @Tags Посещаемость
// @Description Посещаемость текущего сотрудника за месяц
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month	query	string	true	"месяц YYYY-MM"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/my [get]
func (c *attendanceApiController) my(ctx *fiber.Ctx) error {
	filter := attendanceapimodels.MonthFilter{
		Month:  ctx.Query("month"),
		UserID: middleware.GetUserID(ctx),
	}
	list, err := attendancehandler.Instance.ListMonth(filter)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Посещаемость за месяц
// @Tags Посещаемость
// @Description Посещаемость за месяц по всем сотрудникам или по одному
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.MonthFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/find [post]
func (c *attendanceApiController) find(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.MonthFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := attendancehandler.Instance.ListMonth(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Посещаемость за день
// @Tags Посещаемость
// @Description Посещаемость всех сотрудников за день
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date	path	string	true	"дата YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/day/{date} [get]
func (c *attendanceApiController) day(ctx *fiber.Ctx) error {
	date := ctx.Params("date")
	list, err := attendancehandler.Instance.ListDay(date)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка табеля
// @Tags Посещаемость
// @Description Табель посещаемости за месяц в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.MonthFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/export [post]
func (c *attendanceApiController) export(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.MonthFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := attendancehandler.Instance.ExportMonth(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}
