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

type BillboardController struct {
	service service.BillboardService
}

func CreateBillboardController(e *echo.Group, service service.BillboardService, requireAuth echo.MiddlewareFunc) {
	c := BillboardController{
		service: service,
	}
	e.POST("/:storeId/billboards", c.AddBillboard, requireAuth)
	e.GET("/:storeId/billboards", c.GetBillboards)
	e.GET("/:storeId/billboards/:billboardId", c.GetBillboard)
	e.PATCH("/:storeId/billboards/:billboardId", c.UpdateBillboard, requireAuth)
	e.DELETE("/:storeId/billboards/:billboardId", c.DeleteBillboard, requireAuth)
}

func (c *BillboardController) AddBillboard(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	payload := dto.BillboardRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddBillboard").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.AddBillboard(e.Request().Context(), userID, storeID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully created billboard record", responsePayload)
}

func (c *BillboardController) GetBillboards(e echo.Context) error {
	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBillboards").Msg("")
	}

	responsePayload, err := c.service.GetBillboards(e.Request().Context(), storeID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved billboards record", responsePayload)
}

func (c *BillboardController) GetBillboard(e echo.Context) error {
	billboardID := e.Param("billboardId")
	if billboardID == "" {
		return response.WriteErrorResponse(e, errs.ErrBillboardIDRequired, nil)
	}

	responsePayload, err := c.service.GetBillboard(e.Request().Context(), billboardID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved billboard record", responsePayload)
}

func (c *BillboardController) UpdateBillboard(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	billboardID := e.Param("billboardId")
	if billboardID == "" {
		return response.WriteErrorResponse(e, errs.ErrBillboardIDRequired, nil)
	}

	payload := dto.BillboardRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBillboard").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.UpdateBillboard(e.Request().Context(), userID, storeID, billboardID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated billboard record", responsePayload)
}

func (c *BillboardController) DeleteBillboard(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	billboardID := e.Param("billboardId")
	if billboardID == "" {
		return response.WriteErrorResponse(e, errs.ErrBillboardIDRequired, nil)
	}

	err := c.service.DeleteBillboard(e.Request().Context(), userID, storeID, billboardID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully deleted billboard record", nil)
}
