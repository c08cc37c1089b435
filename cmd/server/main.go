package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-scheduler/cmd/internal/config"
	"appointment-scheduler/cmd/internal/domain/database"
	"appointment-scheduler/cmd/internal/domain/database/repository"
	"appointment-scheduler/cmd/internal/mcpserver"
	"appointment-scheduler/cmd/internal/routes"
	"appointment-scheduler/cmd/internal/service"
	"appointment-scheduler/cmd/internal/utils/validators"
	"github.com/labstack/gommon/log"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "Appointment Scheduler"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	configureLogging(cfg.Log.Level)

	// Init database
	db, err := database.Open(cfg.Database.URL, cfg.Log.Level == "debug")
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db, database.Migrations); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	apptRepo := repository.NewAppointmentRepository(db)
	apptService := service.NewAppointmentService(apptRepo, validators.New())
	apptRoutes := routes.NewAppointmentDefault(apptService)

	mcpServer := mcpserver.New(serverName, serverVersion)
	apptRoutes.Register(mcpServer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Transport == config.TransportHTTP {
		err = runHTTP(ctx, mcpServer, cfg.Server.Address())
	} else {
		log.Info("starting MCP server in stdio mode")
		err = mcpserver.ServeStdio(ctx, mcpServer, os.Stdin, os.Stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Info("shutdown complete")
}

func runHTTP(ctx context.Context, mcpServer *server.MCPServer, addr string) error {
	httpServer := mcpserver.NewHTTPServer(mcpServer)

	errc := make(chan error, 1)
	go func() {
		log.Infof("starting MCP server in HTTP mode on %s", addr)
		errc <- httpServer.Start(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// Logs always go to stderr; stdout belongs to the stdio transport.
func configureLogging(level string) {
	log.SetOutput(os.Stderr)
	log.SetHeader("${time_rfc3339} ${level}")
	switch level {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}
