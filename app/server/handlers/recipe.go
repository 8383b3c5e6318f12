package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-box/app/server/constants"
	"recipe-box/app/server/models"
	"recipe-box/app/server/storage"
	"recipe-box/app/server/utils"
)

type recipeInfo struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	TitleNormalized string    `json:"titleNormalized"`
	Photo           *string   `json:"photo"`
	UserID          string    `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	User            *userInfo `json:"user,omitempty"`
}

func newRecipeInfo(recipe *models.Recipe, withUser bool) *recipeInfo {
	info := &recipeInfo{
		ID:              recipe.ID,
		Title:           recipe.Title,
		Slug:            recipe.Slug,
		TitleNormalized: recipe.TitleNormalized,
		Photo:           recipe.Photo,
		UserID:          recipe.UserID,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
	if withUser {
		info.User = newUserInfo(&recipe.User)
	}
	return info
}

type recipeListMeta struct {
	PageIndex  int   `json:"pageIndex"`
	PerPage    int   `json:"perPage"`
	TotalCount int64 `json:"totalCount"`
}

type recipeListResponse struct {
	Recipes []recipeInfo   `json:"recipes"`
	Meta    recipeListMeta `json:"meta"`
}

type recipeCreateRequest struct {
	Title string `json:"title"`
}

type recipeUpdateRequest struct {
	Title *string `json:"title"`
}

func (a *App) RecipeList(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err := a.authUser(c); err != nil {
		a.l.Error("failed to get auth user", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	pageIndex := a.parsePageIndex(c.QueryParam("pageIndex"))
	recipeID := c.QueryParam("recipeId")
	recipeName := c.QueryParam("recipeName")

	// 过滤条件对列表和计数必须一致
	applyFilters := func(query *gorm.DB) *gorm.DB {
		if recipeID != "" {
			query = query.Where("id = ?", recipeID)
		}
		if recipeName != "" {
			query = query.Where("title_normalized LIKE ?", "%"+utils.NormalizeTitle(recipeName)+"%")
		}
		return query
	}

	var (
		recipes    []models.Recipe
		totalCount int64
	)

	// 列表和计数在同一个事务里读取，保证二者来自同一个快照
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := applyFilters(tx.Model(&models.Recipe{})).
			Preload("User").
			Order("created_at ASC").
			Limit(constants.RecipesPerPage).
			Offset(pageIndex * constants.RecipesPerPage).
			Find(&recipes).Error; err != nil {
			return err
		}

		return applyFilters(tx.Model(&models.Recipe{})).Count(&totalCount).Error
	}); err != nil {
		a.l.Error("failed to list recipes", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resRecipes := []recipeInfo{}
	for i := range recipes {
		resRecipes = append(resRecipes, *newRecipeInfo(&recipes[i], true))
	}

	return c.JSON(http.StatusOK, &recipeListResponse{
		Recipes: resRecipes,
		Meta: recipeListMeta{
			PageIndex:  pageIndex,
			PerPage:    constants.RecipesPerPage,
			TotalCount: totalCount,
		},
	})
}

func (a *App) RecipeGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err := a.authUser(c); err != nil {
		a.l.Error("failed to get auth user", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 从数据库中获得指定的菜谱
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).Preload("User").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erText(c, http.StatusNotFound, "Recipe not found")
		}
		a.l.Error("failed to get recipe", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, newRecipeInfo(&recipe, true))
}

func (a *App) RecipeCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err := a.authUser(c)
	if err != nil {
		a.l.Error("failed to get auth user", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req recipeCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.erText(c, http.StatusBadRequest, "Validation Error")
	}
	if req.Title == "" {
		return a.erText(c, http.StatusBadRequest, "Validation Error")
	}

	// 创建菜谱，别名和规范化标题在这里同步派生，归属用户来自认证身份
	recipe := models.Recipe{
		Title:           req.Title,
		Slug:            utils.GenerateSlug(req.Title),
		TitleNormalized: utils.NormalizeTitle(req.Title),
		UserID:          user.ID,
	}
	if err := a.db.WithContext(rctx).Create(&recipe).Error; err != nil {
		a.l.Error("failed to create recipe", zap.String("title", req.Title), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, newRecipeInfo(&recipe, false))
}

func (a *App) RecipeUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err := a.authUser(c); err != nil {
		a.l.Error("failed to get auth user", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()
	id := c.Param("id")

	// 绑定请求体
	var req recipeUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.erText(c, http.StatusBadRequest, "Validation Error")
	}

	// 从数据库中获得指定的菜谱
	var recipe models.Recipe
	if err := a.db.WithContext(rctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erText(c, http.StatusNotFound, "Recipe not found")
		}
		a.l.Error("failed to get recipe", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 标题变更时同步重算派生字段
	if req.Title != nil && *req.Title != "" {
		recipe.Title = *req.Title
		recipe.Slug = utils.GenerateSlug(*req.Title)
		recipe.TitleNormalized = utils.NormalizeTitle(*req.Title)
	}

	// 更新菜谱
	if err := a.db.WithContext(rctx).Updates(&recipe).Error; err != nil {
		a.l.Error("failed to update recipe", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, newRecipeInfo(&recipe, false))
}

func (a *App) RecipeDelete(c echo.Context) error {
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

	// 先删照片：对象存储删除失败就中止，不允许数据库和存储状态悄悄错开
	if recipe.Photo != nil {
		key := storage.KeyFromURL(*recipe.Photo)
		if err := a.store.Delete(rctx, key); err != nil {
			a.l.Error("failed to delete recipe photo", zap.String("id", id), zap.String("key", key), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 删除菜谱
	if err := a.db.WithContext(rctx).Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
		a.l.Error("failed to delete recipe", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
