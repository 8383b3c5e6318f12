package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-box/app/server/constants"
	"recipe-box/app/server/models"
	"recipe-box/app/server/storage"
)

// RecipePhotoCreate 首次挂照片， POST 语义，返回 201
func (a *App) RecipePhotoCreate(c echo.Context) error {
	return a.recipePhotoUpsert(c, http.StatusCreated)
}

// RecipePhotoUpdate 替换照片， PUT 语义，返回 200
func (a *App) RecipePhotoUpdate(c echo.Context) error {
	return a.recipePhotoUpsert(c, http.StatusOK)
}

func (a *App) recipePhotoUpsert(c echo.Context, successStatus int) error {
	// 抓取 user 信息（认证）
	if _, err := a.authUser(c); err != nil {
		a.l.Error("failed to get auth user", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 从数据库中获得指定的菜谱
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erText(c, http.StatusNotFound, "Recipe not found")
		}
		a.l.Error("failed to get recipe", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 提取上传文件
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return a.erText(c, http.StatusBadRequest, "Validation Error")
	}

	// 大小检查必须在任何对象存储调用之前
	if fileHeader.Size > constants.PhotoMaxSizeBytes {
		return a.er(c, http.StatusRequestEntityTooLarge)
	}

	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	// 上传新照片，键为 {毫秒时间戳}-{原始文件名}
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), fileHeader.Filename)
	url, err := a.store.Upload(rctx, key, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		a.l.Error("failed to upload photo", zap.String("key", key), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	oldPhoto := recipe.Photo

	// 上传 + 记录更新是必须一致的单元；这一步失败会留下一个无主的新对象，属于接受的缺口
	if err := a.db.WithContext(rctx).Model(&recipe).Update("photo", url).Error; err != nil {
		a.l.Error("failed to update recipe photo", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 新照片已落库，旧照片的清理是尽力而为的收尾
	if oldPhoto != nil {
		oldKey := storage.KeyFromURL(*oldPhoto)
		if err := a.store.Delete(rctx, oldKey); err != nil {
			a.l.Error("failed to delete old photo", zap.String("id", id), zap.String("key", oldKey), zap.Error(err))
		}
	}

	return c.JSON(successStatus, newRecipeInfo(&recipe, false))
}

func (a *App) RecipePhotoDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err := a.authUser(c); err != nil {
		a.l.Error("failed to get auth user", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 从数据库中获得指定的菜谱
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erText(c, http.StatusNotFound, "Recipe not found")
		}
		a.l.Error("failed to get recipe", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 删除照片对象，失败则中止，字段保持原样
	if recipe.Photo != nil {
		key := storage.KeyFromURL(*recipe.Photo)
		if err := a.store.Delete(rctx, key); err != nil {
			a.l.Error("failed to delete photo", zap.String("id", id), zap.String("key", key), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 清空字段
	if err := a.db.WithContext(rctx).Model(&recipe).Update("photo", nil).Error; err != nil {
		a.l.Error("failed to clear recipe photo", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
