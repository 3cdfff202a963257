package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tauqeerkhan/portfolio/internal/analytics"
	"github.com/tauqeerkhan/portfolio/internal/chat"
	"github.com/tauqeerkhan/portfolio/internal/config"
	"github.com/tauqeerkhan/portfolio/internal/contact"
	"github.com/tauqeerkhan/portfolio/internal/content"
	"github.com/tauqeerkhan/portfolio/internal/logger"
	"github.com/tauqeerkhan/portfolio/internal/storage"
	"github.com/tauqeerkhan/portfolio/internal/tourws"
	"github.com/tauqeerkhan/portfolio/internal/web"
)

func newServeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.ConfigPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	inbox := contact.NewSQLiteStore(db)
	if err := inbox.Migrate(ctx); err != nil {
		return err
	}

	var store contact.Store = inbox
	if cfg.Firestore.Enabled() {
		fs, err := contact.NewFirestoreStore(ctx, contact.FirestoreConfig{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsPath: cfg.Firestore.CredentialsPath,
			Collection:      cfg.Firestore.Collection,
		}, log)
		if err != nil {
			return err
		}
		defer fs.Close()
		store = &contact.MirrorStore{Primary: fs, Mirror: inbox, Log: log}
		log.Info("contact messages stored in firestore", zap.String("project", cfg.Firestore.ProjectID))
	}

	smtpCfg := contact.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		To:       cfg.SMTP.To,
	}
	var notifier contact.Notifier
	if smtpCfg.Enabled() {
		notifier = contact.NewSMTPNotifier(smtpCfg)
	} else {
		log.Warn("SMTP credentials not set, contact notifications disabled")
	}

	var completer chat.Completer = chat.Unconfigured{}
	if cfg.Chat.APIKey != "" {
		completer = chat.NewOpenAICompleter(chat.OpenAIConfig{
			APIKey:      cfg.Chat.APIKey,
			BaseURL:     cfg.Chat.BaseURL,
			Model:       cfg.Chat.Model,
			MaxTokens:   cfg.Chat.MaxTokens,
			Temperature: cfg.Chat.Temperature,
			Timeout:     cfg.Chat.Timeout,
		}, log)
	} else {
		log.Warn("OPENAI_API_KEY not set, chatbot disabled")
	}

	var tracker *analytics.Tracker
	if cfg.Analytics.Enabled {
		tracker = analytics.NewTracker(db, cfg.Analytics.Salt, log)
		if err := tracker.Migrate(ctx); err != nil {
			return err
		}
	}

	secret := cfg.Admin.JWTSecret
	if secret == "" {
		secret = analytics.RandomToken()
		log.Warn("ADMIN_JWT_SECRET not set, admin sessions end on restart")
	}
	if cfg.Admin.Password == "admin123" {
		log.Warn("admin password is the default, set ADMIN_PASSWORD")
	}

	tourHandler := tourws.NewHandler(tourResolver(cfg.Site.Variant, cfg.Tour), tourws.Config{
		CallTimeout:    cfg.Tour.CallTimeout,
		SpeakTimeout:   cfg.Tour.SpeakTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, log)

	site, err := web.New(web.Options{
		Log:            log,
		DefaultVariant: cfg.Site.Variant,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        cfg.Server.Metrics,
		Retention:      cfg.Analytics.Retention,
		Contact:        contact.NewService(store, notifier, log),
		Inbox:          inbox,
		Chat:           chat.NewBot(completer, log),
		Tracker:        tracker,
		Admin:          web.NewAdminAuth(cfg.Admin.Username, cfg.Admin.Password, []byte(secret), cfg.Admin.SessionTTL),
		Tour:           tourHandler,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      site.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("variant", cfg.Site.Variant), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	if tracker != nil {
		g.Go(func() error {
			return tracker.RunCleanup(gctx, cfg.Analytics.Retention, cfg.Analytics.CleanupInterval)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("server exited")
	return nil
}

// tourResolver maps a requested variant to its tour, applying configured
// timing overrides. An empty variant means fallback.
func tourResolver(fallback string, overrides config.TourConfig) tourws.Resolver {
	return func(variant string) (tourws.Tour, error) {
		if variant == "" {
			variant = fallback
		}
		v, err := content.Lookup(variant)
		if err != nil {
			return tourws.Tour{}, err
		}
		return tourws.Tour{Catalog: v.Steps, Timing: overrides.Apply(v.Timing)}, nil
	}
}
