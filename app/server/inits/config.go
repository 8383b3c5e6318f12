package inits

import (
	"fmt"
	"os"
	"strings"

	"recipe-box/app/server/config"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if origins, exist := os.LookupEnv("ALLOWED_ORIGINS"); exist && origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.System.AllowedOrigins = append(cfg.System.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if endpoint, exist := os.LookupEnv("S3_ENDPOINT"); !exist {
		return nil, fmt.Errorf("S3_ENDPOINT environment variable not set")
	} else {
		cfg.Storage.Endpoint = endpoint
	}

	if accessKey, exist := os.LookupEnv("S3_ACCESS_KEY_ID"); !exist {
		return nil, fmt.Errorf("S3_ACCESS_KEY_ID environment variable not set")
	} else {
		cfg.Storage.AccessKeyID = accessKey
	}

	if secretKey, exist := os.LookupEnv("S3_SECRET_ACCESS_KEY"); !exist {
		return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY environment variable not set")
	} else {
		cfg.Storage.SecretAccessKey = secretKey
	}

	if bucket, exist := os.LookupEnv("S3_BUCKET"); !exist {
		return nil, fmt.Errorf("S3_BUCKET environment variable not set")
	} else {
		cfg.Storage.Bucket = bucket
	}

	if publicURL, exist := os.LookupEnv("S3_PUBLIC_URL"); !exist {
		return nil, fmt.Errorf("S3_PUBLIC_URL environment variable not set")
	} else {
		cfg.Storage.PublicURL = strings.TrimSuffix(publicURL, "/")
	}

	{
		useSSL, exist := os.LookupEnv("S3_USE_SSL")
		cfg.Storage.UseSSL = exist && strings.HasPrefix(strings.ToLower(useSSL), "t")
	}

	return cfg, nil
}
