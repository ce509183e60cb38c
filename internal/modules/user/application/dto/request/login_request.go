package request

// LoginRequest 演示登录：按角色切换到对应的种子用户，没有口令校验
type LoginRequest struct {
	Role string `json:"role"` // attendant / manager
}
