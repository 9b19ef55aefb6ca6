// Copyright (c) 2026 Harry Huang
package maptracker

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// mtLog returns the map-tracker sub-logger. It is built on demand so that it
// follows whatever writer the entry point installs on the global logger.
func mtLog() *zerolog.Logger {
	l := log.With().Str("module", "map-tracker").Logger()
	return &l
}
