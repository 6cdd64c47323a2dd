package handlers

import (
	"net/http"

	"grenzgaenger_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Grenzgänger-Service API running"

type StatusHandler struct {
	usecase usecase.IStatusUseCase
}

func NewStatusHandler(uc usecase.IStatusUseCase) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// Root godoc
// @Summary  API banner
// @Tags     status
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// Diagnostics godoc
// @Summary      Backend diagnostics
// @Description  Reports the configured lead store and whether it is reachable. Always 200.
// @Tags         status
// @Produce      json
// @Success      200  {object}  usecase.Diagnostics
// @Router       /test [get]
func (h *StatusHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Diagnostics(c.Request.Context()))
}

// Health godoc
// @Summary  Liveness probe
// @Tags     status
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
