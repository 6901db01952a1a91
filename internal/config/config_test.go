package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ap-south-1", cfg.Dynamo.Region)
	assert.Equal(t, "UserTable", cfg.Dynamo.UserTable)
	assert.Equal(t, "WishlistTable", cfg.Dynamo.WishlistTable)
	assert.Equal(t, "jv_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Policy.ExhibitionRequireAuth)
	assert.True(t, cfg.Policy.QuizRequireAuth)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DYNAMO_ENDPOINT", "http://localhost:8000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("EXHIBITION_REQUIRE_AUTH", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "eu-west-1", cfg.Dynamo.Region)
	assert.Equal(t, "http://localhost:8000", cfg.Dynamo.Endpoint)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.Policy.ExhibitionRequireAuth)
	assert.True(t, cfg.Policy.QuizRequireAuth)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("QUIZ_REQUIRE_AUTH", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Policy.QuizRequireAuth)
}

func TestValidate_MissingTables(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Dynamo.UserTable = "UserTable"
	assert.Error(t, cfg.Validate())

	cfg.Dynamo.WishlistTable = "WishlistTable"
	assert.NoError(t, cfg.Validate())
}
