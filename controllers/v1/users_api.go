package apiv1

import (
	"hrms-backend/controllers"
	usershandler "hrms-backend/lib/users/handler"
	"hrms-backend/middleware"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	employeeapimodels "hrms-backend/models/api/employee"

	"github.com/gofiber/fiber/v2"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Put("profile", controller.updateProfile)
		router.Use(middleware.StaffRequired())
		router.Post("", controller.create)
		router.Post("find", controller.find)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Post(":id/approve", controller.approve)
		router.Put(":id/status", controller.setStatus)
	})
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника, табельный номер присваивается автоматически
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *usersApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usershandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Поиск сотрудников
// @Tags Сотрудники
// @Description Поиск сотрудников с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userFindRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/find [post]
func (c *usersApiController) find(ctx *fiber.Ctx) error {
	var payload userFindRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := usershandler.Instance.Find(payload.Filter, payload.Pagination)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

type userFindRequest struct {
	Filter     employeeapimodels.UserFind `json:"filter"`
	Pagination apimodels.Pagination       `json:"pagination"`
}

// @Summary Карточка сотрудника
// @Tags Сотрудники
// @Description Карточка сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид сотрудника"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, err := usershandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Редактирование сотрудника
// @Tags Сотрудники
// @Description Редактирование данных сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид сотрудника"
// @Param	body				body		employeeapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *usersApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload employeeapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := usershandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Одобрение учетной записи
// @Tags Сотрудники
// @Description Одобрение самостоятельно зарегистрированного сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/approve [post]
func (c *usersApiController) approve(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := usershandler.Instance.Approve(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Смена статуса сотрудника
// @Tags Сотрудники
// @Description Смена статуса сотрудника (работает/в отпуске/уволен)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид сотрудника"
// @Param	body				body		userStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/status [put]
func (c *usersApiController) setStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload userStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status := models.UserStatus(payload.Status)
	if err := usershandler.Instance.SetStatus(id, status); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

type userStatusRequest struct {
	Status string `json:"status"`
}

// @Summary Обновление своего профиля
// @Tags Сотрудники
// @Description Обновление контактных и платежных данных сотрудником
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/profile [put]
func (c *usersApiController) updateProfile(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload employeeapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := usershandler.Instance.UpdateProfile(userID, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
