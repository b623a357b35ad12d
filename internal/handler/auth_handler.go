/**
* Name: 			auth_handler.go
* Description: 		회원가입, 로그인, 로그아웃, 세션 검증 HTTP 핸들러
* Workflow: 		register -> login (sessionToken 발급) -> validate / logout
 */
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"AIChatbot_Backend/internal/auth"
	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/middleware"
	"AIChatbot_Backend/internal/models"
	"AIChatbot_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type Accounts interface {
	Register(ctx context.Context, in auth.RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Session, models.User, error)
	Logout(ctx context.Context, token string) (bool, error)
	UserCount(ctx context.Context) (int64, error)
}

type AuthHandler struct {
	accounts Accounts
	sessions middleware.SessionResolver
}

func NewAuthHandler(accounts Accounts, sessions middleware.SessionResolver) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

// /register 요청 바디
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"new_user"`
	Email    string `json:"email" binding:"required" example:"new_user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RegisterResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"User registered successfully"`
	UserID  int64  `json:"userId" example:"1"`
}

// /login 요청 바디
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"new_user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Success      bool              `json:"success" example:"true"`
	Message      string            `json:"message" example:"Login successful"`
	SessionToken string            `json:"sessionToken" example:"3f1c8a52-8d8e-4c55-9a53-4b8f3f0d2a71"`
	User         models.PublicUser `json:"user"`
}

type LogoutResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Logout successful"`
}

type ValidateResponse struct {
	Valid bool               `json:"valid" example:"true"`
	User  *models.PublicUser `json:"user,omitempty"`
}

type DBStatusResponse struct {
	Status    string `json:"status" example:"success"`
	Message   string `json:"message" example:"Database connection successful!"`
	UserCount int64  `json:"userCount" example:"3"`
	Database  string `json:"database" example:"SQLite"`
}

// Register godoc
// @Summary      회원가입 (Register)
// @Description  새로운 사용자 계정을 생성합니다. 이메일과 사용자명은 중복될 수 없습니다.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Invite-Code header string false "초대 코드 (설정된 경우 필수)"
// @Param        request body handler.RegisterRequest true "회원가입 요청 정보"
// @Success      200 {object} handler.RegisterResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      403 {object} handler.ErrorResponse "초대 코드 불일치"
// @Failure      409 {object} handler.ErrorResponse "이메일 또는 사용자명 중복"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrPasswordTooLong):
		fail(c, http.StatusBadRequest, "Invalid request", fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes))
		return
	case errors.Is(err, auth.ErrInvalidInput):
		fail(c, http.StatusBadRequest, "Invalid request", "Username, a valid email and password are required")
		return
	case errors.Is(err, storage.ErrEmailExists):
		fail(c, http.StatusConflict, "Conflict", "User with this email already exists")
		return
	case errors.Is(err, storage.ErrUsernameExists):
		fail(c, http.StatusConflict, "Conflict", "Username already taken")
		return
	default:
		logging.Error().Err(err).Msg("Register(): failed to create user")
		fail(c, http.StatusInternalServerError, "Internal error", "Registration failed")
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{Success: true, Message: "User registered successfully", UserID: user.ID})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  이메일과 비밀번호로 로그인하고 24시간 유효한 세션 토큰을 발급받습니다.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.LoginResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	sess, user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Invalid credentials", "Invalid email or password")
			return
		}
		logging.Error().Err(err).Msg("Login(): login failed")
		fail(c, http.StatusInternalServerError, "Internal error", "Login failed")
		return
	}

	logging.Info().Int64("user_id", user.ID).Msg("Login(): session issued")
	c.JSON(http.StatusOK, LoginResponse{
		Success:      true,
		Message:      "Login successful",
		SessionToken: sess.Token,
		User:         user.Public(),
	})
}

// Logout godoc
// @Summary      로그아웃 (Logout)
// @Description  세션 토큰을 폐기합니다. 이미 폐기된 토큰은 success=false 를 반환합니다.
// @Tags         Auth
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} handler.LogoutResponse
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	revoked, err := h.accounts.Logout(c.Request.Context(), middleware.TokenFromHeader(c))
	if err != nil {
		logging.Error().Err(err).Msg("Logout(): failed to revoke session")
		fail(c, http.StatusInternalServerError, "Internal error", "Logout failed")
		return
	}
	message := "Logout successful"
	if !revoked {
		message = "Invalid session"
	}
	c.JSON(http.StatusOK, LogoutResponse{Success: revoked, Message: message})
}

// Validate godoc
// @Summary      세션 검증 (Validate)
// @Description  Authorization 헤더의 세션 토큰이 유효한지 확인합니다.
// @Tags         Auth
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} handler.ValidateResponse
// @Router       /api/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	user, ok := h.sessions.ResolveUser(c.Request.Context(), middleware.TokenFromHeader(c))
	if !ok {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}
	public := user.Public()
	c.JSON(http.StatusOK, ValidateResponse{Valid: true, User: &public})
}

// TestDB godoc
// @Summary      DB 연결 확인
// @Tags         Auth
// @Produce      json
// @Success      200 {object} handler.DBStatusResponse
// @Failure      500 {object} handler.DBStatusResponse
// @Router       /api/auth/test-db [get]
func (h *AuthHandler) TestDB(c *gin.Context) {
	count, err := h.accounts.UserCount(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("TestDB(): database check failed")
		c.JSON(http.StatusInternalServerError, DBStatusResponse{Status: "error", Message: "Database connection failed", Database: "SQLite"})
		return
	}
	c.JSON(http.StatusOK, DBStatusResponse{
		Status:    "success",
		Message:   "Database connection successful!",
		UserCount: count,
		Database:  "SQLite",
	})
}
