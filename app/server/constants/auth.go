package constants

import "time"

const (
	// AuthTokenDuration 令牌有效期，签发后固定一小时过期
	AuthTokenDuration = 1 * time.Hour
)

const (
	CacheKeyAuthUser = "recipes:auth:user:%s" // %s -> email
)

const (
	// CacheExpireAuthUser 身份缓存的有效期，过期后回源数据库，
	// 这也是被删除用户的令牌仍能解析出身份的最长窗口
	CacheExpireAuthUser = 5 * time.Minute
)
