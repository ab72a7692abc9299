package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Delvoid/ecom-admin/internal/dto"
	"github.com/Delvoid/ecom-admin/internal/service"
	"github.com/Delvoid/ecom-admin/pkg/errs"
	"github.com/Delvoid/ecom-admin/pkg/response"
	"github.com/Delvoid/ecom-admin/pkg/utils"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, requireAuth echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.POST("/:storeId/products", c.AddProduct, requireAuth)
	e.GET("/:storeId/products", c.GetProducts)
	e.GET("/:storeId/products/:productId", c.GetProduct)
	e.PATCH("/:storeId/products/:productId", c.UpdateProduct, requireAuth)
	e.DELETE("/:storeId/products/:productId", c.DeleteProduct, requireAuth)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.AddProduct(e.Request().Context(), userID, storeID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully created product record", responsePayload)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	filter := dto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), storeID, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", responsePayload)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	productID := e.Param("productId")
	if productID == "" {
		return response.WriteErrorResponse(e, errs.ErrProductIDRequired, nil)
	}

	responsePayload, err := c.service.GetProduct(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved product record", responsePayload)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	productID := e.Param("productId")
	if productID == "" {
		return response.WriteErrorResponse(e, errs.ErrProductIDRequired, nil)
	}

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	if validationErrs := payload.Validate(); len(validationErrs) != 0 {
		return response.WriteErrorResponse(e, errs.ErrValidation, validationErrs)
	}

	responsePayload, err := c.service.UpdateProduct(e.Request().Context(), userID, storeID, productID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully updated product record", responsePayload)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	userID := utils.ExtractUserID(e)
	if userID == "" {
		return response.WriteErrorResponse(e, errs.ErrUnauthenticated, nil)
	}

	storeID := e.Param("storeId")
	if storeID == "" {
		return response.WriteErrorResponse(e, errs.ErrStoreIDRequired, nil)
	}

	productID := e.Param("productId")
	if productID == "" {
		return response.WriteErrorResponse(e, errs.ErrProductIDRequired, nil)
	}

	err := c.service.DeleteProduct(e.Request().Context(), userID, storeID, productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully deleted product record", nil)
}
