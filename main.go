package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	"hrms_backend/internals/helpers/dbtime"
	"hrms_backend/internals/middlewares/hrauth"
	"hrms_backend/internals/seeds"
	"hrms_backend/internals/server"
)

func main() {
	configs.LoadEnv()

	cmd := &cli.Command{
		Name:   "hrms",
		Usage:  "HRMS Lite API: employee directory, attendance and dashboard",
		Action: serve,
		Description: `
Environment variables:
	PORT                    (default: 8000)
	DATABASE_URL            (default: sqlite:///./hrms.db)
	HRMS_TIMEZONE           (default: process local zone)
	HRMS_REQUEST_TIMEOUT    (default: 5s)
	HRMS_CORS_ORIGINS       (default: *)
	HRMS_RATE_LIMIT_MAX     (default: 100, 0 disables)
	HRMS_RATE_LIMIT_WINDOW  (default: 1m)
	HRMS_JWT_SECRET         (default: empty, auth disabled)
	DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_CONN_MAX_IDLE_TIME, DB_CONN_MAX_LIFETIME
	DB_SLOW_THRESHOLD       (default: 200ms)
	DB_LOG_LEVEL            (default: warn)
`,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate the schema and run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the schema and exit",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "insert demo employees, skipping ids that already exist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "JSON array of employee create payloads",
						Value:   seeds.DefaultEmployeesFile,
					},
				},
				Action: seed,
			},
			{
				Name:  "token",
				Usage: "print a bearer token for the /api guard (needs HRMS_JWT_SECRET)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sub", Value: "hr-admin", Usage: "token subject"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
				},
				Action: token,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Printf("[ERROR] %v", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap loads config, opens the store and migrates it. The caller closes the DB.
func bootstrap(ctx context.Context) (*configs.Config, *gorm.DB, dbtime.Clock, error) {
	cfg, err := configs.Load(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, db, dbtime.SystemClock(loc), nil
}

func serve(ctx context.Context, _ *cli.Command) error {
	cfg, db, clock, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("[WARN] close database: %v", err)
		}
	}()

	app := server.NewApp(cfg, db, clock)
	return server.Run(ctx, cfg, app)
}

func migrate(ctx context.Context, _ *cli.Command) error {
	_, db, _, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)
	log.Println("[INFO] Schema is up to date")
	return nil
}

func seed(ctx context.Context, cmd *cli.Command) error {
	_, db, clock, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return seeds.RunAllSeeds(ctx, db, clock, cmd.String("file"))
}

func token(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configs.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tok, err := hrauth.IssueToken(cfg.App.JWTSecret, cmd.String("sub"), cmd.Duration("ttl"), time.Now())
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
