package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/algoroadmap/roadmap-server/internal/api/http/context"
	"github.com/algoroadmap/roadmap-server/internal/api/http/router"
	httpServer "github.com/algoroadmap/roadmap-server/internal/api/http/server"
	"github.com/algoroadmap/roadmap-server/internal/catalog"
	"github.com/algoroadmap/roadmap-server/internal/config"
	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
	"github.com/algoroadmap/roadmap-server/internal/password"
	"github.com/algoroadmap/roadmap-server/internal/repository/postgres"
	"github.com/algoroadmap/roadmap-server/internal/server"
	"github.com/algoroadmap/roadmap-server/internal/service"
	"github.com/algoroadmap/roadmap-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)
	ctxMgr := httpctx.NewManager()

	chapters, err := catalog.New()
	if err != nil {
		logger.Fatal("failed to load chapter catalog", "error", err)
	}

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	noteService := service.NewNote(noteRepo, logger)

	r := router.New(authService, noteService, chapters, db, tokenManager, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
