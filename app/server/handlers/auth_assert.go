package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"recipe-box/app/server/constants"
	"recipe-box/app/server/types"
)

// authUser 从请求上下文取出认证中间件写入的身份。
// 路由配置正确时这里不会失败，但处理器不允许在没有身份的情况下继续执行。
func (a *App) authUser(c echo.Context) (*types.AuthUser, error) {
	user, ok := c.Get(constants.ContextKeyAuthUser).(*types.AuthUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user in request context")
	}

	return user, nil
}
