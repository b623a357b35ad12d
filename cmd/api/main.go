package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"AIChatbot_Backend/internal/auth"
	"AIChatbot_Backend/internal/chat"
	"AIChatbot_Backend/internal/config"
	"AIChatbot_Backend/internal/handler"
	"AIChatbot_Backend/internal/llm"
	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/predict"
	"AIChatbot_Backend/internal/router"
	"AIChatbot_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title           AI Chatbot Backend API
// @version         1.0
// @description     세션 인증, 챗봇, AI 도구 (연봉/감정/날씨/자동차) 예측 API
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey SessionToken
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("main(): failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("main(): failed to open database")
	}
	defer db.Close()

	sessions := auth.NewSessionManager(storage.NewSessionStore(db), storage.NewUserStore(db))
	accounts := auth.NewAccountService(db, sessions)

	llmClient := llm.NewClient(cfg.LLM)
	if !llmClient.Available() {
		logging.Warn().Msg("main(): LLM API key not configured, chat will use custom and fallback replies only")
	}
	responder := chat.NewResponder(llmClient, cfg.LLM, cfg.Chat)
	conversations := chat.NewConversationStore(cfg.Chat.ConversationTTL, cfg.Chat.HistoryLimit)

	engine := router.SetupRouter(cfg, router.Deps{
		Sessions: sessions,
		Auth:     handler.NewAuthHandler(accounts, sessions),
		Tools:    handler.NewToolsHandler(predict.NewSuite(cfg.Predict)),
		Chat:     handler.NewChatHandler(accounts, sessions, responder, conversations, llmClient),
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("models_dir", cfg.Predict.ModelsDir).Msg("main(): server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("main(): server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("main(): shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("main(): graceful shutdown failed")
	}
}
