package constants

const (
	// RecipesPerPage 菜谱列表每页固定条数
	RecipesPerPage = 10

	// PhotoMaxSizeBytes 照片上传大小上限 (5 MiB)，超出的请求在访问对象存储之前就被拒绝
	PhotoMaxSizeBytes = 5 * 1024 * 1024
)

const (
	// ContextKeyAuthUser 认证中间件向请求上下文写入身份信息时使用的键
	ContextKeyAuthUser = "authUser"
)
