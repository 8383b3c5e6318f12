package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipe-box/app/server/constants"
	"recipe-box/app/server/jwt"
	"recipe-box/app/server/types"
)

type uploadCall struct {
	key         string
	size        int64
	contentType string
	body        []byte
}

// fakeStore 记录所有对象存储调用，供断言使用
type fakeStore struct {
	uploads   []uploadCall
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	body, _ := io.ReadAll(reader)
	f.uploads = append(f.uploads, uploadCall{key: key, size: size, contentType: contentType, body: body})
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, key)
	return nil
}

func newTestApp(t *testing.T) (*App, sqlmock.Sqlmock, *fakeStore) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	store := &fakeStore{}
	return NewApp(zap.NewNop(), db, j, store), mock, store
}

type testRequest struct {
	method      string
	target      string
	body        io.Reader
	contentType string
	paramNames  []string
	paramValues []string
	principal   *types.AuthUser
}

func newTestContext(t *testing.T, req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	httpReq := httptest.NewRequest(req.method, req.target, req.body)
	if req.contentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)
	if len(req.paramNames) > 0 {
		c.SetParamNames(req.paramNames...)
		c.SetParamValues(req.paramValues...)
	}
	if req.principal != nil {
		c.Set(constants.ContextKeyAuthUser, req.principal)
	}
	return c, rec
}

func testPrincipal() *types.AuthUser {
	return &types.AuthUser{
		ID:    "user-1",
		Email: "a@x.com",
		Name:  "A",
	}
}

func jsonBody(s string) (io.Reader, string) {
	return strings.NewReader(s), echo.MIMEApplicationJSON
}
