package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/battleworld/backend/internal/adapter/email"
	"github.com/battleworld/backend/internal/adapter/postgres"
	applicationrepo "github.com/battleworld/backend/internal/adapter/postgres/application"
	chatpermrepo "github.com/battleworld/backend/internal/adapter/postgres/chatperm"
	commentrepo "github.com/battleworld/backend/internal/adapter/postgres/comment"
	emaillogrepo "github.com/battleworld/backend/internal/adapter/postgres/emaillog"
	interviewrepo "github.com/battleworld/backend/internal/adapter/postgres/interview"
	jobrepo "github.com/battleworld/backend/internal/adapter/postgres/job"
	statsrepo "github.com/battleworld/backend/internal/adapter/postgres/stats"
	userrepo "github.com/battleworld/backend/internal/adapter/postgres/user"
	"github.com/battleworld/backend/internal/adapter/provider/clerk"
	"github.com/battleworld/backend/internal/adapter/storage"
	"github.com/battleworld/backend/internal/adapter/stream"
	"github.com/battleworld/backend/internal/auth"
	"github.com/battleworld/backend/internal/config"
	applicationsvc "github.com/battleworld/backend/internal/service/application"
	authsvc "github.com/battleworld/backend/internal/service/auth"
	chatsvc "github.com/battleworld/backend/internal/service/chat"
	commentsvc "github.com/battleworld/backend/internal/service/comment"
	dashboardsvc "github.com/battleworld/backend/internal/service/dashboard"
	emailsvc "github.com/battleworld/backend/internal/service/email"
	interviewsvc "github.com/battleworld/backend/internal/service/interview"
	jobsvc "github.com/battleworld/backend/internal/service/job"
	resumesvc "github.com/battleworld/backend/internal/service/resume"
	usersvc "github.com/battleworld/backend/internal/service/user"
	"github.com/battleworld/backend/internal/transport/middleware"
	"github.com/battleworld/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires
// adapters, services, and the HTTP transport, and serves until ctx is
// cancelled; then it drains in-flight requests within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	jobs := jobrepo.New(pool)
	applications := applicationrepo.New(pool)
	interviews := interviewrepo.New(pool)
	comments := commentrepo.New(pool)
	chatPerms := chatpermrepo.New(pool)
	emailLogs := emaillogrepo.New(pool)
	stats := statsrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	verifier := clerk.NewVerifier(cfg.Auth.IdentityAPIURL, cfg.Auth.IdentityAPIKey, cfg.Auth.IdentityTimeout, logger)
	emailClient := email.NewClient(cfg.Email.APIURL, cfg.Email.APIKey, cfg.Email.FromAddress, cfg.Email.Timeout, logger)
	storageClient := storage.NewClient(cfg.Storage.APIURL, cfg.Storage.APIKey, cfg.Storage.UploadURLTTL, cfg.Storage.Timeout, logger)
	tokenProvider := stream.NewTokenProvider(cfg.Stream.APISecret)
	streamClient := stream.NewClient(cfg.Stream.BaseURL, cfg.Stream.APIKey, cfg.Stream.Timeout, logger)

	authService := authsvc.NewService(logger, users, verifier, jwtManager)
	userService := usersvc.NewService(logger, users)
	jobService := jobsvc.NewService(logger, jobs)
	applicationService := applicationsvc.NewService(
		logger, applications, jobs, users, chatPerms, emailLogs, emailClient, txManager, cfg.Recruitment)
	interviewService := interviewsvc.NewService(logger, interviews, users)
	commentService := commentsvc.NewService(logger, comments, interviews)
	chatService := chatsvc.NewService(logger, chatPerms, users, tokenProvider, streamClient)
	dashboardService := dashboardsvc.NewService(logger, stats)
	emailService := emailsvc.NewService(logger, emailLogs, emailClient)
	resumeService := resumesvc.NewService(logger, applications, storageClient)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        rest.NewAuthHandler(authService, logger),
		User:        rest.NewUserHandler(userService, logger),
		Job:         rest.NewJobHandler(jobService, logger),
		Application: rest.NewApplicationHandler(applicationService, storageClient, logger),
		Interview:   rest.NewInterviewHandler(interviewService, commentService, logger),
		Chat:        rest.NewChatHandler(chatService, logger),
		Dashboard:   rest.NewDashboardHandler(dashboardService, logger),
		Email:       rest.NewEmailHandler(emailService, logger),
		Resume:      rest.NewResumeHandler(resumeService, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
