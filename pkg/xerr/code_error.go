package xerr

import "fmt"

// CodeError 自定义错误结构
type CodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *CodeError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// New 创建新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Message: msg}
}

// 常用通用错误码
const (
	OK                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500

	// AI 建议相关错误码
	NotConfigured     = 1001 // 未配置 API Key
	RequestFailed     = 1002 // 上游请求失败
	MalformedResponse = 1003 // 上游响应缺少预期字段
)

// 常用预定义错误
var (
	ErrSuccess     = New(OK, "Success")
	ErrServerError = New(InternalServerError, "Erro interno, contate o suporte")
	ErrParam       = New(BadRequest, "Parâmetro inválido")

	ErrNotConfigured     = New(NotConfigured, "API key não configurada")
	ErrRequestFailed     = New(RequestFailed, "Não foi possível gerar sugestões. Verifique sua API key.")
	ErrMalformedResponse = New(MalformedResponse, "Resposta da API em formato inesperado")
)
