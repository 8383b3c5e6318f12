package types

// AuthUser 认证中间件解析出的请求身份，随请求上下文流转，请求结束即丢弃。
// 注意这里永远不携带密码字段。
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
