package inits

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"recipe-box/app/server/config"
	"recipe-box/app/server/storage"
)

func Storage(cfg *config.Config) (*storage.Store, error) {
	// 连接对象存储
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKeyID, cfg.Storage.SecretAccessKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	// 准备存储桶
	store, err := storage.New(context.Background(), client, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}

	return store, nil
}
