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

type SizeController struct {
	service service.SizeService
}

func CreateSizeController(e *echo.Group, service service.SizeService, requireAuth echo.MiddlewareFunc) {
	c := SizeController{
		service: service,
	}
	e.POST("/:storeId/sizes", c.AddSize, requireAuth)
	e.GET("/:storeId/sizes", c.GetSizes)
	e.GET("/:storeId/sizes/:sizeId", c.GetSize)
	e.PATCH("/:storeId/sizes/:sizeId", c.UpdateSize, requireAuth)
	e.DELETE("/:storeId/sizes/:sizeId", c.DeleteSize, requireAuth)
}

func (c *SizeController) AddSize(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	payload := dto.SizeRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddSize").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.AddSize(e.Request().Context(), userID, storeID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully created size record", responsePayload)
}

func (c *SizeController) GetSizes(e echo.Context) error {
	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSizes").Msg("")
	}

	responsePayload, err := c.service.GetSizes(e.Request().Context(), storeID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved sizes record", responsePayload)
}

func (c *SizeController) GetSize(e echo.Context) error {
	sizeID := e.Param("sizeId")
	if sizeID == "" {
		return response.WriteErrorResponse(e, errs.ErrSizeIDRequired, nil)
	}

	responsePayload, err := c.service.GetSize(e.Request().Context(), sizeID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved size record", responsePayload)
}

func (c *SizeController) UpdateSize(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	sizeID := e.Param("sizeId")
	if sizeID == "" {
		return response.WriteErrorResponse(e, errs.ErrSizeIDRequired, nil)
	}

	payload := dto.SizeRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateSize").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.UpdateSize(e.Request().Context(), userID, storeID, sizeID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated size record", responsePayload)
}

func (c *SizeController) DeleteSize(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	sizeID := e.Param("sizeId")
	if sizeID == "" {
		return response.WriteErrorResponse(e, errs.ErrSizeIDRequired, nil)
	}

	err := c.service.DeleteSize(e.Request().Context(), userID, storeID, sizeID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully deleted size record", nil)
}
