package apiv1

import (
	"hrms-backend/controllers"
	filestorage "hrms-backend/lib/file-storage"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	dbmodels "hrms-backend/models/db"
	"io"

	"github.com/gofiber/fiber/v2"
)

type filesApiController struct {
	controllers.BaseAPIController
}

func InitFilesApiRouters(app *fiber.App) {
	controller := filesApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("upload", controller.upload)
		router.Get("", controller.list)
		router.Get(":id", controller.download)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Загрузка документа
// @Tags Документы
// @Description Загрузка документа сотрудника в хранилище
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   type	query	string	true	"тип документа"
// @Param   user_id	query	string	false	"ид сотрудника, только для администратора и HR"
// @Param   file	formData	file	true	"файл"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/upload [post]
func (c *filesApiController) upload(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if targetID := ctx.Query("user_id"); targetID != "" && middleware.GetUserRole(ctx).IsStaff() {
		userID = targetID
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	info := dbmodels.UploadFileInfo{
		UserID:      userID,
		FileName:    fileHeader.Filename,
		FileType:    dbmodels.FileType(ctx.Query("type")),
		ContentType: fileHeader.Header.Get("Content-Type"),
	}
	id, err := filestorage.Instance.Upload(ctx.Context(), info, content)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список документов
// @Tags Документы
// @Description Документы сотрудника, опционально по типу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   type	query	string	false	"тип документа"
// @Param   user_id	query	string	false	"ид сотрудника, только для администратора и HR"
// @Success 200 {object} apimodels.Response{data=[]filesapimodels.FileView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files [get]
func (c *filesApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if targetID := ctx.Query("user_id"); targetID != "" && middleware.GetUserRole(ctx).IsStaff() {
		userID = targetID
	}
	list, err := filestorage.Instance.List(userID, dbmodels.FileType(ctx.Query("type")))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание документа
// @Tags Документы
// @Description Скачивание документа сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид документа"
// @Param   user_id	query	string	false	"ид сотрудника, только для администратора и HR"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *filesApiController) download(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if targetID := ctx.Query("user_id"); targetID != "" && middleware.GetUserRole(ctx).IsStaff() {
		userID = targetID
	}
	id := ctx.Params("id")
	rec, content, err := filestorage.Instance.Get(ctx.Context(), userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary Удаление документа
// @Tags Документы
// @Description Удаление документа сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"ид документа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [delete]
func (c *filesApiController) delete(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	id := ctx.Params("id")
	if err := filestorage.Instance.Delete(ctx.Context(), userID, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
