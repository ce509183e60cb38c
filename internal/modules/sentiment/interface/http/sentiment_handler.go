package handler

import (
	sentimentRequest "MedLink/internal/modules/sentiment/application/dto/request"
	sentimentRespond "MedLink/internal/modules/sentiment/application/dto/respond"
	sentimentDomain "MedLink/internal/modules/sentiment/domain"
	"MedLink/pkg/back"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type SentimentHandler struct{}

func NewSentimentHandler() *SentimentHandler {
	return &SentimentHandler{}
}

// Analyze 前端在输入变化时同步调用，必须保持无状态、确定性
func (h *SentimentHandler) Analyze(c *gin.Context) {
	var req sentimentRequest.AnalyzeRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	result := sentimentDomain.Analyze(req.Text)
	back.Result(c, sentimentRespond.AnalyzeRespond{
		Score:      result.Score,
		Label:      string(result.Label),
		Confidence: result.Confidence,
		Emotions:   result.Emotions,
		Urgency:    string(sentimentDomain.UrgencyOf(result)),
	}, nil)
}
