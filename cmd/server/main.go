package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/classpilot/backend/internal/api"
	"github.com/classpilot/backend/internal/assistant"
	"github.com/classpilot/backend/internal/classroom"
	"github.com/classpilot/backend/internal/infrastructure/config"
	"github.com/classpilot/backend/internal/llm"
	"github.com/classpilot/backend/internal/progress"
	"github.com/classpilot/backend/internal/publisher"
	"github.com/classpilot/backend/internal/workflow"

	_ "github.com/classpilot/backend/docs" // generated swagger docs
)

// @title           Classpilot API
// @version         1.0
// @description     Teaching copilot — generate lessons and quizzes, grade submissions, and give feedback through your classroom platform.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	progressLog, err := progress.NewSQLite(cfg.ProgressDBPath)
	if err != nil {
		logger.Error("failed to open progress database", "error", err)
		os.Exit(1)
	}
	defer progressLog.Close()

	gateway := llm.NewClient(cfg.LLMURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	tutor := assistant.New(gateway, logger)

	classroomClient := classroom.NewClient(cfg.ClassroomURL, cfg.ClassroomToken)
	docsClient := publisher.NewDocsClient(cfg.DocsURL, cfg.DocsToken)
	formsClient := publisher.NewFormsClient(cfg.FormsURL, cfg.FormsToken)

	handler := api.NewHandler(
		workflow.NewLesson(tutor, classroomClient, logger),
		workflow.NewQuiz(tutor, formsClient, classroomClient, logger),
		workflow.NewGrading(tutor, classroomClient, progressLog, logger),
		workflow.NewFeedback(tutor, classroomClient, docsClient, logger),
		progressLog,
		logger,
	)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      3 * time.Minute, // LLM calls can be slow
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
