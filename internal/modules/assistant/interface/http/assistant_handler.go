package handler

import (
	assistantRequest "MedLink/internal/modules/assistant/application/dto/request"
	"MedLink/internal/modules/assistant/application/service"
	"MedLink/pkg/back"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	svc service.SuggestionService
}

func NewAssistantHandler(svc service.SuggestionService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// GenerateSuggestions 单次外呼，失败整体返回错误提示，由前端决定是否重试
func (h *AssistantHandler) GenerateSuggestions(c *gin.Context) {
	var req assistantRequest.GenerateSuggestionsRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.GenerateSuggestions(c.Request.Context(), req.ApiKey, req.Message)
	back.Result(c, data, err)
}
