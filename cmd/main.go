// @title Trip Planner Backend API
// @version 1.0
// @description Trip planning API with hotel, flight and activity resolution
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	_ "TRIPPLANNER_BACK-END/docs" // This is required for swagger
	"TRIPPLANNER_BACK-END/internal/config"
	"TRIPPLANNER_BACK-END/internal/handlers"
	"TRIPPLANNER_BACK-END/internal/jobs"
	"TRIPPLANNER_BACK-END/internal/logger"
	"TRIPPLANNER_BACK-END/internal/providers/amadeus"
	"TRIPPLANNER_BACK-END/internal/providers/assistant"
	"TRIPPLANNER_BACK-END/internal/providers/googlemaps"
	"TRIPPLANNER_BACK-END/internal/providers/iatageo"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/routes"
	"TRIPPLANNER_BACK-END/internal/store"
)

func main() {
	logger.Init("info", "json")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// pgxpool + simple protocol (required behind PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("parse dsn")
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "tripplanner-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect")
	}
	defer pool.Close()

	db := store.New(pool, cfg.Database.QueryTimeout)

	// ping at boot
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("ping")
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(ctx); err != nil {
				log.Fatal().Err(err).Msg("migrate")
			}
		}
	}

	// --- External providers ---
	p := cfg.Providers
	hotelsAndFlights := amadeus.New(amadeus.Config{
		BaseURL:      p.Amadeus.BaseURL,
		ClientID:     p.Amadeus.ClientID,
		ClientSecret: p.Amadeus.ClientSecret,
		Timeout:      cfg.Upstream.Timeout,
	})
	maps, err := googlemaps.New(googlemaps.Config{
		APIKey:    p.GoogleMaps.APIKey,
		MapsURL:   p.GoogleMaps.MapsURL,
		PlacesURL: p.GoogleMaps.PlacesURL,
		Timeout:   cfg.Upstream.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("google maps client")
	}
	airports := iatageo.New(p.IATAGeo.BaseURL, cfg.Upstream.Timeout)

	var planner handlers.Planner
	if p.Gemini.APIKey != "" {
		gemini, err := assistant.New(context.Background(), assistant.Config{
			APIKey:          p.Gemini.APIKey,
			Model:           p.Gemini.Model,
			Temperature:     p.Gemini.Temperature,
			DefaultRadiusKM: p.DefaultRadiusKM,
		})
		if err != nil {
			log.Error().Err(err).Msg("assistant disabled")
		} else {
			defer gemini.Close()
			planner = gemini
		}
	}

	events := resolver.New(resolver.Deps{
		Geocoder: maps,
		Places:   maps,
		Airports: airports,
		Photos:   maps,
		Hotels:   hotelsAndFlights,
		Flights:  hotelsAndFlights,
		Store:    db,
	}, resolver.Options{
		UpstreamTimeout: cfg.Upstream.Timeout,
		DefaultRadiusKM: p.DefaultRadiusKM,
	})

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:      handlers.NewAuthHandler(db, &cfg.JWT),
		Health:    handlers.NewHealthHandler(db),
		Trips:     handlers.NewTripsHandler(db, maps),
		Events:    handlers.NewEventsHandler(db, events),
		Itinerary: handlers.NewItineraryHandler(db),
		Assistant: handlers.NewAssistantHandler(db, planner, events),
		Lookup: handlers.NewLookupHandler(handlers.LookupDeps{
			Geocoder:     maps,
			Places:       maps,
			Airports:     airports,
			Photos:       maps,
			Autocomplete: maps,
			CityHotels:   hotelsAndFlights,
		}),
	}, &cfg.JWT)

	// --- Background jobs ---
	if cfg.Sweeper.Enabled {
		sweeper := jobs.NewSweeper(db, events, cfg.Sweeper.BatchSize, cfg.Sweeper.MaxAttempts, cfg.Sweeper.Timeout)
		scheduler, err := sweeper.Schedule(cfg.Sweeper.Spec)
		if err != nil {
			log.Fatal().Err(err).Str("spec", cfg.Sweeper.Spec).Msg("schedule sweeper")
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	// --- HTTP Server + Graceful Shutdown ---
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           logger.Middleware(c.Handler(mux)),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Env).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe")
		}
	}()

	// wait for SIGINT/SIGTERM to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("Server stopped.")
}
