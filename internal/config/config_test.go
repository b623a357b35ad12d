package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Predict.Timeout)
	assert.Equal(t, "python3", cfg.Predict.Interpreter)
	assert.Equal(t, "OpenAI_GPT-3.5", cfg.LLM.ModelLabel)
	assert.Empty(t, cfg.Session.InviteCode)
	assert.Equal(t, 10, cfg.Chat.HistoryLimit)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := "server:\n  port: 9090\npredict:\n  models_dir: /srv/models\n  timeout: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv("AICHAT_SERVER_PORT", "9191")
	t.Setenv("AICHAT_LLM_API_KEY", "sk-test")
	t.Setenv("AICHAT_PREDICT_BREAKER_MIN_REQUESTS", "3")
	t.Setenv("AICHAT_SESSION_INVITE_CODE", "join-us")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port, "env overrides file")
	assert.Equal(t, "/srv/models", cfg.Predict.ModelsDir)
	assert.Equal(t, 2*time.Second, cfg.Predict.Timeout)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.EqualValues(t, 3, cfg.Predict.Breaker.MinRequests)
	assert.Equal(t, "join-us", cfg.Session.InviteCode)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Predict.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"AICHAT_SERVER_PORT":                  "server.port",
		"AICHAT_PREDICT_MODELS_DIR":           "predict.models_dir",
		"AICHAT_PREDICT_BREAKER_OPEN_TIMEOUT": "predict.breaker.open_timeout",
		"AICHAT_LOG_LEVEL":                    "log.level",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
