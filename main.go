package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configsdatabase"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/handlers/admin"
	"github.com/josemeldlrs1103/graduacionjosemelendez/handlers/public"
	"github.com/josemeldlrs1103/graduacionjosemelendez/repositories"
	"github.com/josemeldlrs1103/graduacionjosemelendez/routes"
	"github.com/josemeldlrs1103/graduacionjosemelendez/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Error("configuration error", zap.Error(err))
		os.Exit(1)
	}

	db, err := configsdatabase.Connect(cfg)
	if err != nil {
		configslog.Log.Error("database connection failed", zap.Error(err))
		os.Exit(1)
	}
	defer configsdatabase.Close(db)

	inviteRepo := repositories.NewInviteRepository(db)
	rsvpRepo := repositories.NewRsvpRepository(db)

	inviteService := services.NewInviteService(inviteRepo, cfg)
	rsvpService := services.NewRsvpService(rsvpRepo, inviteRepo, cfg)
	exportService := services.NewExportService(rsvpRepo, inviteRepo)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "graduacionjosemelendez",
	})

	routes.SetupRoutes(app, cfg, routes.Handlers{
		AdminInvites: admin.NewInviteHandler(inviteService),
		Export:       admin.NewExportHandler(exportService),
		Rsvp:         public.NewRsvpHandler(rsvpService, cfg),
		Pages:        public.NewPageHandler(inviteService, cfg),
		Event:        public.NewEventHandler(cfg),
	})

	// Shut down cleanly on Ctrl-C / SIGTERM so in-flight requests finish.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		configslog.SLog.Info("shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			configslog.Log.Error("shutdown error", zap.Error(err))
		}
	}()

	configslog.SLog.Infow("listening", "addr", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
