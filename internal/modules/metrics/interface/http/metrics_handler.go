package handler

import (
	"MedLink/internal/modules/metrics/application/service"
	"MedLink/pkg/back"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	svc service.MetricsService
}

func NewMetricsHandler(svc service.MetricsService) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

func (h *MetricsHandler) Dashboard(c *gin.Context) {
	data, err := h.svc.Dashboard()
	back.Result(c, data, err)
}

func (h *MetricsHandler) Attendants(c *gin.Context) {
	data, err := h.svc.Attendants()
	back.Result(c, data, err)
}
