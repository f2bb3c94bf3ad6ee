package main

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/infrastructure/logger"
	"checkpoint-server/internal/interfaces/httpserver"
)

type Application struct {
	HTTPServer *httpserver.HTTPServer
	Config     *config.Config
	Logger     zerolog.Logger
}

func (application *Application) Start() {
	background := context.Background()
	_, cancel := context.WithCancel(background)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", application.Config.MetricsPort), mux)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.HTTPServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	log := logger.GetLogger()

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	if _, err := logger.New(application.Config.LogLevel, application.Config.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("configure logger")
	}

	application.Logger.Info().
		Str("service", application.Config.ServiceName).
		Str("environment", application.Config.Environment).
		Int("http_port", application.Config.HTTPPort).
		Int("metrics_port", application.Config.MetricsPort).
		Msg("starting checkpoint server")

	application.Start()
}
