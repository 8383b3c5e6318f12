package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-box/app/server/constants"
	"recipe-box/app/server/jwt"
	"recipe-box/app/server/models"
	"recipe-box/app/server/types"
)

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
		Error: message,
	})
}

// Auth 认证中间件：提取 Bearer 令牌，校验签名与有效期，再把声明里的邮箱解析成完整身份。
// 身份解析走缓存旁路：优先查 Redis ，未命中回源数据库并写回缓存。
func Auth(db *gorm.DB, rdb *redis.Client, j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			// 提取 token
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "Unauthorized")
			}

			splits := strings.Split(authHeader, " ")
			if len(splits) != 2 {
				return unauthorized(c, "Unauthorized")
			}

			if strings.ToLower(splits[0]) != "bearer" {
				return unauthorized(c, "Unauthorized")
			}

			// 验证 token
			jwtUser, err := j.ParseUser(splits[1])
			if err != nil {
				// 只有结构损坏这一类错误向外透出原因，其余一律返回统一文案
				if errors.Is(err, jwtlib.ErrTokenMalformed) {
					return unauthorized(c, err.Error())
				}
				return unauthorized(c, "Unauthorized")
			}

			// 查询缓存
			cacheKey := fmt.Sprintf(constants.CacheKeyAuthUser, jwtUser.Email)
			var authUser types.AuthUser
			if cacheBytes, err := rdb.Get(rctx, cacheKey).Bytes(); err != nil {
				if !errors.Is(err, redis.Nil) {
					l.Error("failed to query cache for auth user", zap.String("email", jwtUser.Email), zap.Error(err))
				}
			} else if err = json.Unmarshal(cacheBytes, &authUser); err != nil {
				l.Error("failed to unmarshal auth user", zap.String("email", jwtUser.Email), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
				// 可能是无效的缓存，清理掉
				rdb.Del(rctx, cacheKey)
			} else {
				// 成功拉取到并格式化，设置 context
				c.Set(constants.ContextKeyAuthUser, &authUser)

				// 继续处理
				return next(c)
			}

			// 查询数据库
			var user models.User
			if err := db.WithContext(rctx).First(&user, "email = ?", jwtUser.Email).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return unauthorized(c, "Unauthorized")
				}
				l.Error("failed to find user", zap.String("email", jwtUser.Email), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{
					Error: http.StatusText(http.StatusInternalServerError),
				})
			}

			// 只保留身份字段，密码不进上下文也不进缓存
			authUser = types.AuthUser{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
			}

			// 格式化并加入缓存，方便下一次查询
			if cacheBytes, err := json.Marshal(&authUser); err != nil {
				l.Error("failed to marshal auth user", zap.String("email", jwtUser.Email), zap.Error(err))
			} else {
				rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireAuthUser)
			}

			// 设置 context
			c.Set(constants.ContextKeyAuthUser, &authUser)

			// 继续处理
			return next(c)
		}
	}
}
