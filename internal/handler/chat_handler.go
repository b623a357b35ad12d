/**
* Name: 			chat_handler.go
* Description: 		챗봇 메시지 처리 (커스텀 응답 -> LLM -> 대체 응답)
* Workflow: 		RequireSession -> message_count 증가 -> Responder -> 대화 기록 저장
 */
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"AIChatbot_Backend/internal/chat"
	"AIChatbot_Backend/internal/llm"
	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/middleware"
	"AIChatbot_Backend/internal/models"

	"github.com/gin-gonic/gin"
)

type MessageRecorder interface {
	RecordMessage(ctx context.Context, userID int64) error
}

type ChatHandler struct {
	accounts      MessageRecorder
	sessions      middleware.SessionResolver
	responder     *chat.Responder
	conversations *chat.ConversationStore
	llm           *llm.Client
}

func NewChatHandler(accounts MessageRecorder, sessions middleware.SessionResolver, responder *chat.Responder, conversations *chat.ConversationStore, client *llm.Client) *ChatHandler {
	return &ChatHandler{
		accounts:      accounts,
		sessions:      sessions,
		responder:     responder,
		conversations: conversations,
		llm:           client,
	}
}

// /send 요청 바디
type ChatRequest struct {
	Message   string `json:"message" binding:"required" example:"What can you do?"`
	SessionID string `json:"sessionId" example:"default"`
}

type ChatResponse struct {
	Response  string `json:"response" example:"Hello! How can I help you today?"`
	Status    string `json:"status" example:"success"`
	SessionID string `json:"sessionId" example:"default"`
	Timestamp string `json:"timestamp" example:"2024-05-01T10:00:00Z"`
	Model     string `json:"model" example:"Custom_Response_v1.0"`
}

type ClearRequest struct {
	SessionID string `json:"sessionId" example:"default"`
}

type ClearResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Conversation cleared successfully"`
}

type ChatInfoResponse struct {
	Name            string `json:"name" example:"AI Chatbot"`
	Version         string `json:"version" example:"2.0"`
	Description     string `json:"description"`
	Features        string `json:"features"`
	Status          string `json:"status"`
	ResponseMode    string `json:"response_mode" example:"Hybrid (Custom + OpenAI)"`
	OpenAIAvailable bool   `json:"openai_available" example:"false"`
}

type ChatHealthResponse struct {
	Service         string   `json:"service" example:"chat"`
	Status          string   `json:"status" example:"healthy"`
	Timestamp       string   `json:"timestamp"`
	OpenAIAvailable bool     `json:"openai_available" example:"false"`
	Features        []string `json:"features"`
}

type OpenAIStatusResponse struct {
	llm.Status
	Timestamp string `json:"timestamp"`
}

type OpenAITestResponse struct {
	Success         bool   `json:"success"`
	Response        string `json:"response,omitempty"`
	Error           string `json:"error,omitempty"`
	OpenAIAvailable bool   `json:"openai_available"`
	Message         string `json:"message"`
}

var errEmptyMessage = errors.New("message must not be blank")

// answer runs one chat turn for user. Shared by the HTTP and websocket paths.
func (h *ChatHandler) answer(ctx context.Context, user models.User, req ChatRequest) (ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ChatResponse{}, errEmptyMessage
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = chat.DefaultConversationID
	}

	if err := h.accounts.RecordMessage(ctx, user.ID); err != nil {
		logging.Warn().Err(err).Int64("user_id", user.ID).Msg("answer(): failed to increment message count")
	}

	key := chat.Key(user.ID, sessionID)
	reply := h.responder.Reply(ctx, h.conversations.History(key), message)
	h.conversations.Append(key,
		llm.Message{Role: llm.RoleUser, Content: message},
		llm.Message{Role: llm.RoleAssistant, Content: reply.Text},
	)
	logging.Debug().Int64("user_id", user.ID).Str("model", reply.Model).Msg("answer(): reply generated")

	return ChatResponse{
		Response:  reply.Text,
		Status:    "success",
		SessionID: sessionID,
		Timestamp: timestamp(),
		Model:     reply.Model,
	}, nil
}

// Send godoc
// @Summary      챗봇 메시지 전송
// @Description  메시지에 대한 챗봇 응답을 반환합니다. 커스텀 응답, LLM, 대체 응답 순으로 시도하며 model 필드로 출처를 표시합니다.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.ChatRequest true "메시지"
// @Success      200 {object} handler.ChatResponse
// @Failure      400 {object} handler.ErrorResponse "빈 메시지"
// @Failure      401 {object} handler.ErrorResponse "Please login to chat"
// @Router       /api/chat/send [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	user, _ := middleware.CurrentUser(c)

	resp, err := h.answer(c.Request.Context(), user, req)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clear godoc
// @Summary      대화 기록 삭제
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.ClearRequest false "대화 ID (기본값 default)"
// @Success      200 {object} handler.ClearResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/chat/clear [post]
func (h *ChatHandler) Clear(c *gin.Context) {
	var req ClearRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		invalidRequest(c, err)
		return
	}
	user, _ := middleware.CurrentUser(c)
	h.conversations.Clear(chat.Key(user.ID, req.SessionID))
	c.JSON(http.StatusOK, ClearResponse{Success: true, Message: "Conversation cleared successfully"})
}

// Info godoc
// @Summary      챗봇 정보
// @Tags         Chat
// @Produce      json
// @Success      200 {object} handler.ChatInfoResponse
// @Router       /api/chat/info [get]
func (h *ChatHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, ChatInfoResponse{
		Name:            "AI Chatbot",
		Version:         "2.0",
		Description:     "Hybrid AI-powered chatbot with custom responses and OpenAI integration",
		Features:        "Custom Q&A, OpenAI AI Responses, Smart Fallbacks",
		Status:          "AI Powered and Ready!",
		ResponseMode:    "Hybrid (Custom + OpenAI)",
		OpenAIAvailable: h.llm.Available(),
	})
}

// Health godoc
// @Summary      챗봇 상태
// @Tags         Chat
// @Produce      json
// @Success      200 {object} handler.ChatHealthResponse
// @Router       /api/chat/health [get]
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, ChatHealthResponse{
		Service:         "chat",
		Status:          "healthy",
		Timestamp:       timestamp(),
		OpenAIAvailable: h.llm.Available(),
		Features:        []string{"authentication", "custom_responses", "openai_integration", "hybrid_response_system"},
	})
}

// OpenAIStatus godoc
// @Summary      LLM 연결 상태
// @Tags         Chat
// @Produce      json
// @Success      200 {object} handler.OpenAIStatusResponse
// @Router       /api/chat/openai-status [get]
func (h *ChatHandler) OpenAIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, OpenAIStatusResponse{Status: h.llm.Status(), Timestamp: timestamp()})
}

// Test godoc
// @Summary      챗봇 API 점검
// @Tags         Chat
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /api/chat/test [get]
func (h *ChatHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":          "Chat API is working! Hybrid AI system ready.",
		"status":           "success",
		"openai_available": h.llm.Available(),
	})
}

// TestOpenAI godoc
// @Summary      LLM 호출 점검
// @Description  LLM 에 짧은 요청을 보내 응답 여부를 확인합니다.
// @Tags         Chat
// @Produce      json
// @Success      200 {object} handler.OpenAITestResponse
// @Router       /api/chat/test-openai [get]
func (h *ChatHandler) TestOpenAI(c *gin.Context) {
	text, err := h.llm.Complete(c.Request.Context(), nil, "Say hello in one short sentence.")
	if err != nil {
		c.JSON(http.StatusOK, OpenAITestResponse{
			Success:         false,
			Error:           err.Error(),
			OpenAIAvailable: h.llm.Available(),
			Message:         "OpenAI service test failed",
		})
		return
	}
	c.JSON(http.StatusOK, OpenAITestResponse{
		Success:         true,
		Response:        text,
		OpenAIAvailable: true,
		Message:         "OpenAI service test completed",
	})
}
