package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/personal-blog/api"
	"github.com/rpupo63/personal-blog/config"
	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogger(c)
	log.Info().Msg("Initializing app...")

	jwtSecret, err := resolveJWTSecret(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error resolving JWT secret")
	}

	db, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Str("dbType", config.GetString(c, "DB_TYPE", "sqlite")).Msg("Error connecting to database")
	}

	if err := database.EnableForeignKeys(db); err != nil {
		log.Error().Err(err).Msg("Error enabling foreign keys")
	}

	// the service keeps running on a partially initialized store; requests then fail individually
	if err := database.ApplySchema(db); err != nil {
		log.Error().Err(err).Msg("Error applying schema")
	}

	currentDB := database.New(db)
	defer currentDB.Close()

	if config.GetBool(c, "SEED_PROFILES", false) {
		if err := database.SeedProfiles(currentDB, c); err != nil {
			log.Error().Err(err).Msg("Error seeding profiles")
		}
	}

	// one slot each for the server and the interrupt listener
	errChannel := make(chan error, 2)

	server, err := api.NewServer(currentDB, c,
		api.WithJWTSecret(jwtSecret),
		api.WithContactNotifier(services.NewContactNotifierFromConfig(c)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogger configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT (console or json)
func setupLogger(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// resolveJWTSecret reads JWT_SECRET, from SSM when JWT_SECRET_SSM_PARAMETER is set
func resolveJWTSecret(c map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var client config.ParameterGetter
	if config.GetString(c, "JWT_SECRET_SSM_PARAMETER", "") != "" {
		ssmClient, err := config.NewSSMClient(ctx)
		if err != nil {
			return "", err
		}
		client = ssmClient
	}

	return config.ResolveSecret(ctx, c, client, "JWT_SECRET", "secret")
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
