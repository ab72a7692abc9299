package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/internal/service"
	"github.com/Delvoid/ecom-admin/pkg/errs"
	"github.com/Delvoid/ecom-admin/pkg/response"
	"github.com/Delvoid/ecom-admin/pkg/utils"

	pkgdto "github.com/Delvoid/ecom-admin/pkg/dto"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService, requireAuth echo.MiddlewareFunc) {
	c := CategoryController{
		service: service,
	}
	e.POST("/:storeId/categories", c.AddCategory, requireAuth)
	e.GET("/:storeId/categories", c.GetCategories)
	e.GET("/:storeId/categories/:categoryId", c.GetCategory)
	e.PATCH("/:storeId/categories/:categoryId", c.UpdateCategory, requireAuth)
	e.DELETE("/:storeId/categories/:categoryId", c.DeleteCategory, requireAuth)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.AddCategory(e.Request().Context(), userID, storeID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully created category record", responsePayload)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
	}

	responsePayload, err := c.service.GetCategories(e.Request().Context(), storeID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved categories record", responsePayload)
}

func (c *CategoryController) GetCategory(e echo.Context) error {
	categoryID := e.Param("categoryId")
	if categoryID == "" {
		return response.WriteErrorResponse(e, errs.ErrCategoryIDRequired, nil)
	}

	responsePayload, err := c.service.GetCategory(e.Request().Context(), categoryID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved category record", responsePayload)
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	categoryID := e.Param("categoryId")
	if categoryID == "" {
		return response.WriteErrorResponse(e, errs.ErrCategoryIDRequired, nil)
	}

	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.UpdateCategory(e.Request().Context(), userID, storeID, categoryID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated category record", responsePayload)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	categoryID := e.Param("categoryId")
	if categoryID == "" {
		return response.WriteErrorResponse(e, errs.ErrCategoryIDRequired, nil)
	}

	err := c.service.DeleteCategory(e.Request().Context(), userID, storeID, categoryID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully deleted category record", nil)
}
