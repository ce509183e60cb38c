package handler

import (
	userRequest "MedLink/internal/modules/user/application/dto/request"
	"MedLink/internal/modules/user/application/service"
	"MedLink/pkg/back"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Login(c *gin.Context) {
	var req userRequest.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.Login(req)
	back.Result(c, data, err)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	data, err := h.svc.GetUserInfo(c.GetString("uuid"))
	back.Result(c, data, err)
}
