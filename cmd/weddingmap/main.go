package main

import (
	"context"
	"io"
	"os"

	"wedding-map/internal/config"
	"wedding-map/internal/geolocation"
	"wedding-map/internal/mapview"
	"wedding-map/internal/navigation"
	"wedding-map/internal/registry"
	"wedding-map/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// The terminal belongs to the map, so logs go to a file or nowhere.
	logOut := io.Discard
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open log file")
		}
		defer f.Close()
		logOut = f
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(logOut).Level(level).With().Timestamp().Logger()
	log.Logger = logger

	reg := registry.Wedding()

	geo := chooseGeolocator(config)
	opener := navigation.BrowserOpener{Command: config.BrowserCommand}
	launcher := navigation.NewLauncher(navigation.NewResolver(geo, config.GeolocationTimeout), opener, logger)

	canvas := tui.NewCanvas(reg.Venues(), reg.Routes())
	session, err := mapview.NewSession(reg, canvas, launcher, config.HiddenVenues, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create map session")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := tui.New(ctx, session, canvas, opener)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error().Err(err).Msg("map exited with error")
		os.Exit(1)
	}
}

// chooseGeolocator picks the terminal map's position source. The local
// visitor's public address is unknown here, so GeoIP is left to cmd/api;
// without a fixed origin positioning is absent and navigation searches.
func chooseGeolocator(cfg config.Config) navigation.Geolocator {
	switch {
	case cfg.GeolocationDenied:
		return geolocation.Denied{}
	case cfg.FixedOrigin:
		return geolocation.NewStatic(cfg.OriginLatitude, cfg.OriginLongitude)
	default:
		return nil
	}
}
