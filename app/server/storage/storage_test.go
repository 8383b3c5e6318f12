package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	bucketExists bool
	madeBuckets  []string
	putKeys      []string
	putSizes     []int64
	putTypes     []string
	removedKeys  []string
	putErr       error
	removeErr    error
}

func (f *fakeAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return f.bucketExists, nil
}

func (f *fakeAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	f.madeBuckets = append(f.madeBuckets, bucketName)
	return nil
}

func (f *fakeAPI) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	f.putKeys = append(f.putKeys, objectName)
	f.putSizes = append(f.putSizes, objectSize)
	f.putTypes = append(f.putTypes, opts.ContentType)
	return minio.UploadInfo{Key: objectName}, nil
}

func (f *fakeAPI) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedKeys = append(f.removedKeys, objectName)
	return nil
}

func TestNew_CreatesMissingBucket(t *testing.T) {
	api := &fakeAPI{bucketExists: false}
	_, err := newWithAPI(context.Background(), api, "photos", "https://cdn.example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"photos"}, api.madeBuckets)
}

func TestNew_KeepsExistingBucket(t *testing.T) {
	api := &fakeAPI{bucketExists: true}
	_, err := newWithAPI(context.Background(), api, "photos", "https://cdn.example.com")
	require.NoError(t, err)
	assert.Empty(t, api.madeBuckets)
}

func TestStore_Upload(t *testing.T) {
	api := &fakeAPI{bucketExists: true}
	s, err := newWithAPI(context.Background(), api, "photos", "https://cdn.example.com/")
	require.NoError(t, err)

	url, err := s.Upload(context.Background(), "123-cake.jpg", bytes.NewReader([]byte("data")), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/123-cake.jpg", url)
	assert.Equal(t, []string{"123-cake.jpg"}, api.putKeys)
	assert.Equal(t, []int64{4}, api.putSizes)
	assert.Equal(t, []string{"image/jpeg"}, api.putTypes)
}

func TestStore_UploadError(t *testing.T) {
	api := &fakeAPI{bucketExists: true, putErr: errors.New("boom")}
	s, err := newWithAPI(context.Background(), api, "photos", "https://cdn.example.com")
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), "k", bytes.NewReader(nil), 0, "")
	require.Error(t, err)
}

func TestStore_Delete(t *testing.T) {
	api := &fakeAPI{bucketExists: true}
	s, err := newWithAPI(context.Background(), api, "photos", "https://cdn.example.com")
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), "123-cake.jpg"))
	assert.Equal(t, []string{"123-cake.jpg"}, api.removedKeys)
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "123-cake.jpg", KeyFromURL("https://cdn.example.com/123-cake.jpg"))
	assert.Equal(t, "plain", KeyFromURL("plain"))
}
