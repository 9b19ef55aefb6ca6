package main

import (
	"errors"

	"github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

func runAgent(identifier string) error {
	log.Info().Str("identifier", identifier).Msg("Starting agent server")

	registerAll()

	// Start the agent server
	if err := maa.AgentServerStartUp(identifier); err != nil {
		return errors.New("failed to start agent server")
	}
	log.Info().Msg("Agent server started")

	// Wait for the server to finish
	maa.AgentServerJoin()

	// Shutdown
	maa.AgentServerShutDown()
	log.Info().Msg("Agent server shutdown")
	return nil
}
