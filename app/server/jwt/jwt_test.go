package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_EmptyKey(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestJWT_Roundtrip(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	expires := time.Now().Add(1 * time.Hour).Unix()
	token, err := j.SignToken(&User{Email: "a@x.com", Expires: expires})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := j.ParseUser(token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.Email)
	require.Equal(t, expires, got.Expires)
}

func TestJWT_SameEmailDifferentExpiriesBothValid(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	first, err := j.SignToken(&User{Email: "a@x.com", Expires: time.Now().Add(30 * time.Minute).Unix()})
	require.NoError(t, err)
	second, err := j.SignToken(&User{Email: "a@x.com", Expires: time.Now().Add(1 * time.Hour).Unix()})
	require.NoError(t, err)

	_, err = j.ParseUser(first)
	require.NoError(t, err)
	_, err = j.ParseUser(second)
	require.NoError(t, err)
}

func TestJWT_Expired(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	token, err := j.SignToken(&User{Email: "a@x.com", Expires: time.Now().Add(-1 * time.Minute).Unix()})
	require.NoError(t, err)

	_, err = j.ParseUser(token)
	require.Error(t, err)
}

func TestJWT_WrongKey(t *testing.T) {
	j1, err := New("secret")
	require.NoError(t, err)
	j2, err := New("another-secret")
	require.NoError(t, err)

	token, err := j1.SignToken(&User{Email: "a@x.com", Expires: time.Now().Add(1 * time.Hour).Unix()})
	require.NoError(t, err)

	_, err = j2.ParseUser(token)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j, err := New("secret")
	require.NoError(t, err)

	_, err = j.ParseUser("")
	require.Error(t, err)

	_, err = j.ParseUser("not-a-jwt")
	require.Error(t, err)
}
