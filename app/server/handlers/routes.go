package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes 绑定全部路由，受保护的路由都挂在认证中间件后面
func (a *App) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	// 公开路由
	e.GET("/health", a.HealthCheck)
	e.POST("/auth/sign-up", a.AuthSignUp)
	e.POST("/auth/sign-in", a.AuthSignIn)

	// 受保护路由
	protected := e.Group("", auth)
	protected.GET("/users/:id", a.UserGet)
	protected.GET("/recipes", a.RecipeList)
	protected.POST("/recipes", a.RecipeCreate)
	protected.GET("/recipes/:id", a.RecipeGet)
	protected.PUT("/recipes/:id", a.RecipeUpdate)
	protected.DELETE("/recipes/:id", a.RecipeDelete)
	protected.POST("/recipes/:id/photo", a.RecipePhotoCreate)
	protected.PUT("/recipes/:id/photo", a.RecipePhotoUpdate)
	protected.DELETE("/recipes/:id/photo", a.RecipePhotoDelete)
}
