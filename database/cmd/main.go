package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configsdatabase"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
	"github.com/josemeldlrs1103/graduacionjosemelendez/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "seed the initial invite list")
	flag.Parse()

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

	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Error("database initialization failed", zap.Error(err))
		os.Exit(1)
	}
	configslog.SLog.Info("database initialization finished")
}
