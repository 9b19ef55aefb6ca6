package main

import (
	maptracker "github.com/MaaXYZ/MaaEnd/agent/map-bearing/map-tracker"
	"github.com/rs/zerolog/log"
)

func registerAll() {
	// Register all custom components from each package
	maptracker.Register()

	log.Info().
		Msg("All custom components registered successfully")
}
