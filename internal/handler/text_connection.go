package handler

import (
	"context"
	"encoding/json"
	"time"

	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/models"

	"github.com/gorilla/websocket"
)

const maxFrameSize = 64 << 10

type wsError struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// closeSession tells the client its session is gone and closes the socket.
func closeSession(conn *websocket.Conn) {
	if err := conn.WriteJSON(wsError{Status: "error", Error: "Authentication required"}); err != nil {
		return
	}
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session expired or revoked")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

func (h *ChatHandler) manageTextSession(ctx context.Context, conn *websocket.Conn, token string, user models.User) {
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)
	logging.Debug().Int64("user_id", user.ID).Msg("manageTextSession(): text session started")

ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn().Err(err).Int64("user_id", user.ID).Msg("manageTextSession(): read failed")
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			logging.Debug().Int64("user_id", user.ID).Int("type", messageType).Msg("manageTextSession(): unsupported message type")
			continue
		}

		// 로그아웃/만료된 세션으로는 더 이상 응답하지 않음
		current, ok := h.sessions.ResolveUser(ctx, token)
		if !ok {
			logging.Info().Int64("user_id", user.ID).Msg("manageTextSession(): session no longer valid, closing")
			closeSession(conn)
			break ReadLoop
		}
		user = current

		// JSON 이 아니면 프레임 전체를 메시지로 취급
		var req ChatRequest
		if err := json.Unmarshal(message, &req); err != nil {
			req = ChatRequest{Message: string(message)}
		}

		var out any
		resp, err := h.answer(ctx, user, req)
		if err != nil {
			out = wsError{Status: "error", Error: err.Error()}
		} else {
			out = resp
		}
		if err := conn.WriteJSON(out); err != nil {
			logging.Warn().Err(err).Int64("user_id", user.ID).Msg("manageTextSession(): write failed")
			break ReadLoop
		}
	}
	logging.Debug().Int64("user_id", user.ID).Msg("manageTextSession(): text session ended")
}
