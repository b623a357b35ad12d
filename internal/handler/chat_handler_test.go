package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"AIChatbot_Backend/internal/chat"
	"AIChatbot_Backend/internal/config"
	"AIChatbot_Backend/internal/llm"
	"AIChatbot_Backend/internal/middleware"
	"AIChatbot_Backend/internal/models"
	"AIChatbot_Backend/internal/predict"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRecorder struct{ calls int }

func (f *failingRecorder) RecordMessage(context.Context, int64) error {
	f.calls++
	return errors.New("database is locked")
}

func withUser(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUser, user)
		c.Next()
	}
}

func TestChatSend_RepliesWhenCounterFails(t *testing.T) {
	client := llm.NewClient(config.LLMConfig{})
	store := chat.NewConversationStore(time.Minute, 4)
	recorder := &failingRecorder{}
	h := NewChatHandler(recorder, noSessions{}, chat.NewResponder(client, config.LLMConfig{}, config.ChatConfig{}), store, client)

	r := gin.New()
	r.POST("/send", withUser(models.User{ID: 5}), h.Send)

	status, body := call(t, r, http.MethodPost, "/send", `{"message":"how are you?","sessionId":"abc"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "I'm doing great! Ready to help you with your questions.", body["response"])
	assert.Equal(t, 1, recorder.calls)

	history := store.History(chat.Key(5, "abc"))
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)

	status, _ = call(t, r, http.MethodPost, "/send", `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestToolsHandler_Unavailable(t *testing.T) {
	broken := predict.ProviderFunc[predict.SalaryInput, predict.SalaryResult](func(context.Context, predict.SalaryInput) (predict.SalaryResult, error) {
		return predict.SalaryResult{}, predict.ErrProviderFailed
	})
	h := NewToolsHandler(&predict.Suite{Salary: broken})
	r := gin.New()
	r.POST("/salary", h.SalaryPrediction)

	status, body := call(t, r, http.MethodPost, "/salary", `{"experience":3,"role":"Dev","location":"USA"}`)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Service temporarily unavailable", body["error"])
	assert.Equal(t, "Please try again in a few minutes", body["suggestion"])

	status, _ = call(t, r, http.MethodPost, "/salary", `{"experience":-1,"role":"Dev","location":"USA"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
