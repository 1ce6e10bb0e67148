package apiv1

import (
	"hrms-backend/controllers"
	financehandler "hrms-backend/lib/finance"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	financeapimodels "hrms-backend/models/api/finance"

	"github.com/gofiber/fiber/v2"
)

type financeApiController struct {
	controllers.BaseAPIController
}

func InitFinanceApiRouters(app *fiber.App) {
	controller := financeApiController{}
	app.Route("finance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("my", controller.my)
		router.Get("payslip/:id", controller.payslip)
		router.Use(middleware.StaffRequired())
		router.Post("", controller.save)
		router.Post("find", controller.find)
		router.Post(":id/pay", controller.markPaid)
		router.Post(":id/send-payslip", controller.sendPayslip)
		router.Get("export/:period", controller.export)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Мои расчетные периоды
// @Tags Финансы
// @Description Расчетные периоды текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]financeapimodels.FinanceView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/my [get]
func (c *financeApiController) my(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := financehandler.Instance.ListMy(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Расчетный листок
// @Tags Финансы
// @Description Расчетный листок в pdf. Сотрудник получает только свой листок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид периода"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/payslip/{id} [get]
func (c *financeApiController) payslip(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := middleware.GetUserID(ctx)
	if middleware.GetUserRole(ctx).IsStaff() {
		// администратор и HR получают листок любого сотрудника
		userID = ""
	}
	fileName, file, err := financehandler.Instance.Payslip(userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(file)
}

// @Summary Сохранение расчетного периода
// @Tags Финансы
// @Description Создание или обновление расчетного периода сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		financeapimodels.FinanceData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance [post]
func (c *financeApiController) save(ctx *fiber.Ctx) error {
	var payload financeapimodels.FinanceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := financehandler.Instance.Save(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Расчетные периоды за месяц
// @Tags Финансы
// @Description Расчетные периоды всех сотрудников за месяц
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		financeapimodels.PeriodFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]financeapimodels.FinanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/find [post]
func (c *financeApiController) find(ctx *fiber.Ctx) error {
	var payload financeapimodels.PeriodFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := financehandler.Instance.ListByPeriod(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отметка выплаты
// @Tags Финансы
// @Description Отметка выплаты по расчетному периоду
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид периода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/{id}/pay [post]
func (c *financeApiController) markPaid(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := financehandler.Instance.MarkPaid(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Отправка расчетного листка
// @Tags Финансы
// @Description Отправка расчетного листка сотруднику на почту
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид периода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/{id}/send-payslip [post]
func (c *financeApiController) sendPayslip(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := financehandler.Instance.SendPayslip(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Выгрузка ведомости
// @Tags Финансы
// @Description Расчетная ведомость за период в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   period	path	string	true	"период YYYY-MM"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/export/{period} [get]
func (c *financeApiController) export(ctx *fiber.Ctx) error {
	period := ctx.Params("period")
	fileName, file, err := financehandler.Instance.ExportPeriod(period)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}

// @Summary Удаление расчетного периода
// @Tags Финансы
// @Description Удаление невыплаченного расчетного периода
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид периода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/finance/{id} [delete]
func (c *financeApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := financehandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
