package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/taskmarket/taskmarket-go/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, constants.DefaultHTTPTimeout, cfg.HTTPTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TASKMARKET_API_URL", "https://api.taskmarket.example")
	t.Setenv("TASKMARKET_TOKEN", "tok")
	t.Setenv("TASKMARKET_USER_ID", "u1")
	t.Setenv("TASKMARKET_HTTP_TIMEOUT", "30s")

	cfg := Load()
	assert.Equal(t, "https://api.taskmarket.example", cfg.APIBaseURL)
	assert.Equal(t, "tok", cfg.AuthToken)
	assert.Equal(t, "u1", cfg.UserID)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_TimeoutAsSeconds(t *testing.T) {
	t.Setenv("TASKMARKET_HTTP_TIMEOUT", "45")
	assert.Equal(t, 45*time.Second, Load().HTTPTimeout)
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("TASKMARKET_HTTP_TIMEOUT", "soon")
	assert.Equal(t, constants.DefaultHTTPTimeout, Load().HTTPTimeout)
}
