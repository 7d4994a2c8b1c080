package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/MuammarRizal/Restaurant-web-app-v2/cmd/utils/internal/commands"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/config"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
)

const (
	appName    = "selforder-utils"
	appVersion = "0.1.0"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load("SELFORDER")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logLevel, _ := cfg.GetString("log.level")
	lgr := logger.New(logLevel)

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "seed-demo":
		if err := commands.SeedDemo(ctx, cfg, lgr); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
		lgr.Info("Demo seeding completed successfully")

	case "reset-db":
		if err := commands.ResetDB(ctx, cfg, lgr); err != nil {
			log.Fatalf("Database reset failed: %v", err)
		}
		lgr.Info("Database reset completed successfully")

	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - self-ordering utility commands

Usage:
  %s <command>

Commands:
  seed-demo    Insert demo menus and orders
  reset-db     Drop the orders, menus and qr_codes collections - USE WITH CAUTION
  version      Print version information
  help         Show this help message

Environment Variables:
  SELFORDER_DB_MONGO_URL    MongoDB connection URL (default: mongodb://localhost:27017)
  SELFORDER_DB_MONGO_NAME   Database name (default: selforder)
  SELFORDER_LOG_LEVEL       Log level: debug, info, warn, error (default: info)
`, appName, appName)
}
