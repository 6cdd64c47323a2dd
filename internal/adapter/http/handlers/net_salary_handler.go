package handlers

import (
	"errors"
	"log"
	"net/http"

	request "grenzgaenger_service/internal/adapter/http/dto/request"
	response "grenzgaenger_service/internal/adapter/http/dto/response"
	"grenzgaenger_service/internal/usecase"
	"grenzgaenger_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNetCalcPayload = pkg.NewDomainErrorSimple("INVALID_NET_CALC_INPUT", "gross_chf must be a positive number", http.StatusBadRequest)

type NetSalaryHandler struct {
	usecase usecase.INetSalaryUseCase
}

func NewNetSalaryHandler(uc usecase.INetSalaryUseCase) *NetSalaryHandler {
	return &NetSalaryHandler{usecase: uc}
}

// CalculateNet godoc
// @Summary      Estimate net salary
// @Description  Estimates the monthly net salary of a cross-border commuter from a gross CHF salary.
// @Tags         calc
// @Accept       json
// @Produce      json
// @Param        body  body      request.NetCalcRequest  true  "Salary input"
// @Success      200   {object}  response.NetCalcResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /api/calc/net [post]
func (h *NetSalaryHandler) CalculateNet(c *gin.Context) {
	var payload request.NetCalcRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[calc][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainError(errInvalidNetCalcPayload.Code, errInvalidNetCalcPayload.Message, err, errInvalidNetCalcPayload.HTTPStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.CalculateNet(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapNetSalaryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNetCalcResult(res))
}

func mapNetSalaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNetCalcInput):
		return pkg.NewDomainError(errInvalidNetCalcPayload.Code, errInvalidNetCalcPayload.Message, validationCause(err), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
