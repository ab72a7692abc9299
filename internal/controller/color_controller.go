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

type ColorController struct {
	service service.ColorService
}

func CreateColorController(e *echo.Group, service service.ColorService, requireAuth echo.MiddlewareFunc) {
	c := ColorController{
		service: service,
	}
	e.POST("/:storeId/colors", c.AddColor, requireAuth)
	e.GET("/:storeId/colors", c.GetColors)
	e.GET("/:storeId/colors/:colorId", c.GetColor)
	e.PATCH("/:storeId/colors/:colorId", c.UpdateColor, requireAuth)
	e.DELETE("/:storeId/colors/:colorId", c.DeleteColor, requireAuth)
}

func (c *ColorController) AddColor(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	payload := dto.ColorRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddColor").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.AddColor(e.Request().Context(), userID, storeID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully created color record", responsePayload)
}

func (c *ColorController) GetColors(e echo.Context) error {
	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetColors").Msg("")
	}

	responsePayload, err := c.service.GetColors(e.Request().Context(), storeID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved colors record", responsePayload)
}

func (c *ColorController) GetColor(e echo.Context) error {
	colorID := e.Param("colorId")
	if colorID == "" {
		return response.WriteErrorResponse(e, errs.ErrColorIDRequired, nil)
	}

	responsePayload, err := c.service.GetColor(e.Request().Context(), colorID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved color record", responsePayload)
}

func (c *ColorController) UpdateColor(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	colorID := e.Param("colorId")
	if colorID == "" {
		return response.WriteErrorResponse(e, errs.ErrColorIDRequired, nil)
	}

	payload := dto.ColorRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateColor").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.UpdateColor(e.Request().Context(), userID, storeID, colorID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated color record", responsePayload)
}

func (c *ColorController) DeleteColor(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	colorID := e.Param("colorId")
	if colorID == "" {
		return response.WriteErrorResponse(e, errs.ErrColorIDRequired, nil)
	}

	err := c.service.DeleteColor(e.Request().Context(), userID, storeID, colorID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully deleted color record", nil)
}
