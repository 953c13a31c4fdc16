package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avelier/photography-site-backend/api"
	"github.com/avelier/photography-site-backend/config"
	"github.com/avelier/photography-site-backend/database"
	"github.com/avelier/photography-site-backend/models"
	"github.com/avelier/photography-site-backend/services"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Err(err).Msg("No .env file loaded, using process environment")
	}

	cfg := config.New()

	// A missing connection string is a fatal configuration error. Nothing
	// downstream can degrade around it.
	connStr := connectionString(cfg)
	if connStr == "" {
		zlog.Fatal().Msg("DATABASE_URL (or DB_HOST/DB_USER/DB_PASSWORD/DB_NAME) must be set")
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             5 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		zlog.Fatal().Err(err).Msg("Error testing database connection")
	}

	currentDB := database.New(db)

	// Optional schema sync for fresh environments; production schemas are
	// managed by the CMS migrations.
	if config.GetBool(cfg, "AUTO_MIGRATE", false) {
		zlog.Info().Msg("Running schema auto-migration")
		if err := db.AutoMigrate(
			&models.Project{},
			&models.Photo{},
			&models.Exhibit{},
			&models.Post{},
			&models.PostTag{},
			&models.Page{},
			&models.Subscriber{},
		); err != nil {
			zlog.Fatal().Err(err).Msg("Error migrating schema")
		}
	}

	mailingList := services.NewMailingList(cfg)

	// Media storage is only needed by the admin upload path; run without it
	// when unconfigured.
	media, err := services.NewMediaStorage(context.Background(), cfg)
	if err != nil {
		zlog.Warn().Err(err).Msg("Media storage unavailable, admin photo uploads disabled")
		media = nil
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, mailingList, media)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// connectionString returns DATABASE_URL when set, otherwise assembles a DSN
// from the discrete DB_* variables. Empty means unconfigured.
func connectionString(cfg map[string]string) string {
	if url := config.GetString(cfg, "DATABASE_URL", ""); url != "" {
		return url
	}

	host := config.GetString(cfg, "DB_HOST", "")
	user := config.GetString(cfg, "DB_USER", "")
	password := config.GetString(cfg, "DB_PASSWORD", "")
	name := config.GetString(cfg, "DB_NAME", "")
	if host == "" || user == "" || password == "" || name == "" {
		return ""
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name,
		config.GetString(cfg, "DB_PORT", "5432"),
		config.GetString(cfg, "DB_SSLMODE", "require"),
	)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
