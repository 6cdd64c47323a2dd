package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "grenzgaenger_service/internal/adapter/http/dto/request"
	response "grenzgaenger_service/internal/adapter/http/dto/response"
	"grenzgaenger_service/internal/usecase"
	"grenzgaenger_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
	errInvalidListLimit   = pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit must be between 1 and 500", http.StatusBadRequest)
)

// LeadHandler serves the public lead form and the internal lead listing.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary      Submit a lead
// @Description  Validates, scores and stores a web form submission.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      request.LeadCreateRequest  true  "Lead"
// @Success      200   {object}  response.LeadCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/lead [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[lead][handler] invalid payload err=%v", err)
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	in, err := payload.Lead.ToInput()
	if err != nil {
		appErr := pkg.NewDomainError(errInvalidLeadPayload.Code, errInvalidLeadPayload.Message, err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateLead(c.Request.Context(), in)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[lead][handler] create success id=%s category=%s", created.ID, created.Score.Category)

	c.JSON(http.StatusOK, response.FromLeadCreated(created))
}

// ListLeads godoc
// @Summary      List leads
// @Description  Returns the most recent leads including their score.
// @Tags         leads
// @Produce      json
// @Param        limit  query     int  false  "Max number of leads (1-500)"  default(20)
// @Success      200    {object}  response.LeadListResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /api/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	limit := usecase.DefaultListLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidListLimit.HTTPStatus, errInvalidListLimit.ToHTTPError())
			return
		}
		limit = n
	}

	leads, err := h.usecase.ListLeads(c.Request.Context(), limit)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead):
		return pkg.NewDomainError(errInvalidLeadPayload.Code, errInvalidLeadPayload.Message, validationCause(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidListLimit):
		return errInvalidListLimit
	default:
		log.Printf("[lead][handler] store failure err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "Database error", err, http.StatusInternalServerError)
	}
}
