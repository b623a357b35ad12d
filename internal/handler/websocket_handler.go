package handler

import (
	"net/http"

	"AIChatbot_Backend/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleChatConnection godoc
// @Summary      채팅 WebSocket 연결
// @Description  실시간 채팅을 위한 WebSocket 연결을 시작합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴을 사용하여 이 엔드포인트에 연결해야 합니다.
// @Description  인증은 HTTP Header가 아닌 **쿼리 파라미터('token')**를 통해 수행됩니다.
// @Description  각 텍스트 프레임은 `{"message": "...", "sessionId": "..."}` 형식이며 /api/chat/send 와 같은 응답을 받습니다.
// @Tags         WebSocket (Chat)
// @Param        token    query     string  true  "로그인 시 발급받은 세션 토큰"
// @Success      101      {string}  string  "101 Switching Protocols (WebSocket으로 프로토콜 전환 성공)"
// @Failure      401      {object}  handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /ws/chat [get]
func (h *ChatHandler) HandleChatConnection(c *gin.Context) {
	// 업그레이드 전에 토큰 검증
	token := c.Query("token")
	user, ok := h.sessions.ResolveUser(c.Request.Context(), token)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required", "Please login to chat")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn().Err(err).Int64("user_id", user.ID).Msg("HandleChatConnection(): failed to upgrade to WebSocket")
		return
	}
	logging.Info().Int64("user_id", user.ID).Msg("HandleChatConnection(): WebSocket connection established")

	h.manageTextSession(c.Request.Context(), conn, token, user)
}
