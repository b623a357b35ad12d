package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// 공통 에러 응답
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error,omitempty" example:"Authentication required"`
	Message string `json:"message" example:"Please login to use this feature"`
}

// 예측 서비스 장애 응답
type UnavailableResponse struct {
	Success    bool   `json:"success" example:"false"`
	Error      string `json:"error" example:"Service temporarily unavailable"`
	Message    string `json:"message" example:"Salary prediction is temporarily unavailable"`
	Suggestion string `json:"suggestion" example:"Please try again in a few minutes"`
}

func fail(c *gin.Context, status int, errText, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: errText, Message: message})
}

func invalidRequest(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, "Invalid request", err.Error())
}

func unavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, UnavailableResponse{
		Success:    false,
		Error:      "Service temporarily unavailable",
		Message:    message,
		Suggestion: "Please try again in a few minutes",
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
