package handler

import (
	convRequest "MedLink/internal/modules/conversation/application/dto/request"
	"MedLink/internal/modules/conversation/application/service"
	"MedLink/pkg/back"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	svc service.ConversationService
}

func NewConversationHandler(svc service.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

// List 会话列表，支持 assigned_to / status 查询参数过滤
func (h *ConversationHandler) List(c *gin.Context) {
	req := convRequest.ListConversationsRequest{
		AssignedTo: c.Query("assigned_to"),
		Status:     c.Query("status"),
	}
	data, err := h.svc.ListConversations(req)
	back.Result(c, data, err)
}

func (h *ConversationHandler) Get(c *gin.Context) {
	data, err := h.svc.GetConversation(c.Param("uuid"))
	back.Result(c, data, err)
}

// Inbound 渠道来件入口（演示环境由前端模拟渠道回调）
func (h *ConversationHandler) Inbound(c *gin.Context) {
	var req convRequest.InboundMessageRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.ReceivePatientMessage(req)
	back.Result(c, data, err)
}

func (h *ConversationHandler) Reply(c *gin.Context) {
	var req convRequest.ReplyRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.SendReply(c.GetString("uuid"), req)
	back.Result(c, data, err)
}

func (h *ConversationHandler) Assign(c *gin.Context) {
	var req convRequest.AssignRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	back.Result(c, nil, h.svc.AssignConversation(req))
}

func (h *ConversationHandler) UpdateStatus(c *gin.Context) {
	var req convRequest.UpdateStatusRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	back.Result(c, nil, h.svc.UpdateStatus(req))
}

func (h *ConversationHandler) UpdatePriority(c *gin.Context) {
	var req convRequest.UpdatePriorityRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	back.Result(c, nil, h.svc.UpdatePriority(req))
}

func (h *ConversationHandler) ListChannels(c *gin.Context) {
	back.Result(c, h.svc.ListChannels(), nil)
}
