package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/georgemunganga/storefront/internal/config"
	"github.com/georgemunganga/storefront/internal/console"
	"github.com/georgemunganga/storefront/internal/database"
	"github.com/georgemunganga/storefront/internal/modules/analytics"
	"github.com/georgemunganga/storefront/internal/modules/auth"
	"github.com/georgemunganga/storefront/internal/modules/catalog"
	"github.com/georgemunganga/storefront/internal/modules/inventory"
	"github.com/georgemunganga/storefront/internal/modules/order"
	"github.com/georgemunganga/storefront/internal/modules/supply"
	"github.com/georgemunganga/storefront/internal/modules/user"
)

const usage = "Usage: storefront [--migrate] [--host HOST] <dbname> <port> <user>"

func main() {
	// .env is optional; the environment wins when both are set.
	_ = godotenv.Load()

	app := &cli.App{
		Name:      "storefront",
		Usage:     "terminal client for the store and order database",
		ArgsUsage: "<dbname> <port> <user>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "apply schema migrations before showing the menu"},
			&cli.StringFlag{Name: "host", Usage: "database host, overrides STOREFRONT_DB_HOST"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("storefront stopped")
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 3 {
		fmt.Fprintln(c.App.ErrWriter, usage)
		return nil
	}

	cfg, err := config.Load(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
	if err != nil {
		return err
	}
	if c.IsSet("host") {
		cfg.DBHost = c.String("host")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	greeting()

	fmt.Print("Connecting to database...")
	db, err := database.Open(c.Context, cfg.DSN())
	if err != nil {
		fmt.Println()
		fmt.Fprintf(os.Stderr, "Error - Unable to Connect to Database: %v\n", err)
		fmt.Println("Make sure you started postgres on this machine")
		return cli.Exit("", 1)
	}
	fmt.Println("Done")
	defer func() {
		fmt.Print("Disconnecting from database...")
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("close database")
		}
		fmt.Println("Done\n\nBye !")
	}()

	if c.Bool("migrate") {
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("schema is up to date")
	}

	// ── Phase 1: Identity ───────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo, logger)

	authService := auth.NewService(userRepo, cfg.SessionSecret, cfg.SessionTTL, logger)
	authHandler := auth.NewHandler(authService)

	con := console.New(authHandler.Verifier(), logger)
	user.NewHandler(userService).RegisterCommands(con.MainMenu())
	authHandler.RegisterCommands(con.MainMenu())

	// ── Phase 2: Stores & Inventory ─────────────────────────
	storeRepo := inventory.NewStorePostgresRepository(db)
	warehouseRepo := inventory.NewWarehousePostgresRepository(db)
	productRepo := inventory.NewProductPostgresRepository(db)
	inventoryService := inventory.NewService(userRepo, storeRepo, warehouseRepo, productRepo, cfg.SearchRadius)
	inventory.NewHandler(inventoryService).RegisterCommands(con.UserMenu())

	// ── Phase 3: Orders ─────────────────────────────────────
	orderService := order.NewService(order.NewPostgresRepository(db), inventoryService, cfg.RecentLimit, logger)
	order.NewHandler(orderService).RegisterCommands(con.UserMenu())

	// ── Phase 4: Manager tools ──────────────────────────────
	catalogService := catalog.NewService(catalog.NewPostgresRepository(db), inventoryService, cfg.RecentLimit, logger)
	catalog.NewHandler(catalogService).RegisterCommands(con.UserMenu())

	analyticsService := analytics.NewService(analytics.NewPostgresRepository(db), cfg.RecentLimit, cfg.CustomerRanking, logger)
	analytics.NewHandler(analyticsService).RegisterCommands(con.UserMenu())

	supplyService := supply.NewService(supply.NewPostgresRepository(db), inventoryService, logger)
	supply.NewHandler(supplyService).RegisterCommands(con.UserMenu())

	session := console.NewSession(os.Stdin, os.Stdout)
	logger.WithField("session", session.ID.String()).Debug("session started")
	return con.Run(c.Context, session)
}

func newLogger(cfg *config.Config) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(os.Stderr)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return logger, nil
}

func greeting() {
	fmt.Print(
		"\n\n*******************************************************\n" +
			"              User Interface                          \n" +
			"*******************************************************\n\n")
}
