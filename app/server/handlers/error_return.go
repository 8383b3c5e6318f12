package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipe-box/app/server/types"
	"recipe-box/app/server/utils"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Error: http.StatusText(statusCode),
	})
}

func (a *App) erText(c echo.Context, statusCode int, errText string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Error: errText,
	})
}

func (a *App) erMessage(c echo.Context, statusCode int, errText string, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Error:   errText,
		Message: utils.P(message),
	})
}
