package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGet(t *testing.T) {
	app, mock, _ := newTestApp(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password", "created_at", "updated_at"}).
			AddRow("user-2", "b@x.com", "B", "$argon2id$hash", now, now))

	c, rec := newTestContext(t, testRequest{
		method:      http.MethodGet,
		target:      "/users/user-2",
		paramNames:  []string{"id"},
		paramValues: []string{"user-2"},
		principal:   testPrincipal(),
	})

	require.NoError(t, app.UserGet(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"user-2"`)
	assert.Contains(t, rec.Body.String(), `"email":"b@x.com"`)

	// 密码哈希不对外
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "argon2id")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGet_NotFound(t *testing.T) {
	app, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password", "created_at", "updated_at"}))

	c, rec := newTestContext(t, testRequest{
		method:      http.MethodGet,
		target:      "/users/missing",
		paramNames:  []string{"id"},
		paramValues: []string{"missing"},
		principal:   testPrincipal(),
	})

	require.NoError(t, app.UserGet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGet_NoPrincipal(t *testing.T) {
	app, mock, _ := newTestApp(t)

	c, rec := newTestContext(t, testRequest{
		method:      http.MethodGet,
		target:      "/users/user-2",
		paramNames:  []string{"id"},
		paramValues: []string{"user-2"},
	})

	require.NoError(t, app.UserGet(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 身份缺失时不应有任何数据库访问
	assert.NoError(t, mock.ExpectationsWereMet())
}
