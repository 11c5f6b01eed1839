package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "ana",
		"email":    "ana@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := env.decode(rec)
	assert.Equal(t, "User registered successfully", resp["message"])

	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ana", user["username"])
	assert.NotContains(t, user, "password_hash")

	// Same email again conflicts.
	rec = env.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "other",
		"email":    "ana@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", env.decode(rec)["message"])
}

func TestSignup_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": "ana",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", env.decode(rec)["message"])
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	env := newTestEnv(t)

	token, userID := env.signupAndLogin("ana", "ana@example.com")
	assert.NotEmpty(t, token)
	assert.NotZero(t, userID)
}

func TestLogin_SameErrorForBothFailureModes(t *testing.T) {
	env := newTestEnv(t)

	env.signupAndLogin("ana", "ana@example.com")

	wrongPassword := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "wrong",
	})
	unknownEmail := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, env.decode(wrongPassword)["message"], env.decode(unknownEmail)["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing email or password", env.decode(rec)["message"])
}
