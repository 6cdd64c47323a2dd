package routes

import (
	"grenzgaenger_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLead    = "/lead"
	PathLeads   = "/leads"
	PathCalcNet = "/calc/net"
)

func addStatusRoutes(router *gin.Engine, h *handlers.StatusHandler) {
	router.GET("/", h.Root)
	router.GET("/test", h.Diagnostics)
	router.GET("/health", h.Health)
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler, limiter *ipRateLimiter) {
	// Public form endpoint, throttled per client IP.
	rg.POST(PathLead, limiter.Middleware(), h.CreateLead)
	rg.GET(PathLeads, h.ListLeads)
}

func addCalcRoutes(rg *gin.RouterGroup, h *handlers.NetSalaryHandler) {
	rg.POST(PathCalcNet, h.CalculateNet)
}
