package types

// ErrorMessage 错误响应体，所有错误都以这个结构返回，不暴露内部细节
type ErrorMessage struct {
	Error   string  `json:"error"`
	Message *string `json:"message,omitempty"`
}
