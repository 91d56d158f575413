package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/hamkee/internal/app"
	"github.com/MKhiriev/hamkee/internal/config"
	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.String())

	bootstrap := logger.NewConsoleLogger("hamkee-server")

	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("error parsing flags")
	}

	settings, err := config.NewLoader().Load(flags.EnvFile, flags.Environment)
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("error getting settings")
	}

	log, err := logger.NewLogger("hamkee-server", app.LoggerConfig(settings))
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("error creating logger")
	}
	defer log.Close()

	log.Debug().Any("settings", settings).Msg("received settings")

	application, err := app.New(settings, log, app.WithBuildInfo(build))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = application.Run(); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
	}
}
