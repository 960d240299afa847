package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Brownie44l1/tinyhttp/internal/response"
	"github.com/Brownie44l1/tinyhttp/internal/router"
	"github.com/Brownie44l1/tinyhttp/internal/server"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	metrics := server.NewMetrics()

	// The route surface is fixed before the accept loop starts; the table is
	// frozen by Build and never changes again.
	b := router.New()
	b.GET("/hello", handleHello)
	b.GET("/bye", handleGoodbye)
	b.POST("/submit", handleSubmit)
	b.GET("/metrics", handleMetrics(metrics))

	cfg := server.DefaultConfig()
	srv := server.New(cfg, b.Build(), metrics, log)

	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
	log.Info().Str("addr", cfg.Addr).Msg("listening")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	if err := srv.Close(); err != nil {
		log.Error().Err(err).Msg("close failed")
	}

	snap := metrics.Snapshot()
	log.Info().
		Int64("requests_total", snap.RequestsTotal).
		Int64("not_found_total", snap.NotFoundTotal).
		Int64("parse_failures", snap.ParseFailures).
		Int64("write_failures", snap.WriteFailures).
		Msg("final stats")
}

func handleHello(string) response.Response {
	return response.HTML("Hello Page", "Hello, HTTP Server!", response.StatusOK)
}

func handleGoodbye(string) response.Response {
	return response.HTML("Goodbye Page", "Goodbye, HTTP Server!", response.StatusOK)
}

func handleSubmit(string) response.Response {
	return response.HTML("Submission Page", "Data submitted successfully!", response.StatusOK)
}

func handleMetrics(m *server.Metrics) router.Handler {
	return func(string) response.Response {
		snap := m.Snapshot()
		body := fmt.Sprintf(
			`{"requests_total":%d,"active_connections":%d,"not_found_total":%d,"parse_failures":%d,"write_failures":%d}`,
			snap.RequestsTotal,
			snap.ActiveConnections,
			snap.NotFoundTotal,
			snap.ParseFailures,
			snap.WriteFailures,
		)

		return response.Response{
			StatusCode:  response.StatusOK,
			ContentType: "application/json",
			Body:        body,
		}
	}
}
