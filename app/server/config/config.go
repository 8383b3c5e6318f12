package config

type Config struct {
	System struct {
		IsProd                bool     // 是否为生产环境
		Listen                string   // 监听地址
		DBConnectionString    string   // Postgres 数据库的连接字符串
		RedisConnectionString string   // Redis 数据库的连接字符串
		AllowedOrigins        []string // 允许跨域访问的来源列表，为空表示不开启 CORS
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生签名（ JWT ），更新会导致旧有会话失效
	}
	Storage struct {
		Endpoint        string // 对象存储服务地址
		AccessKeyID     string // 访问密钥 ID
		SecretAccessKey string // 访问密钥
		Bucket          string // 存储桶名称
		PublicURL       string // 公开访问的基础地址，照片地址 = PublicURL + "/" + key
		UseSSL          bool   // 是否使用 TLS 连接对象存储
	}
}
