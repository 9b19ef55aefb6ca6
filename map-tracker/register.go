// Copyright (c) 2026 Harry Huang
package maptracker

import "github.com/MaaXYZ/maa-framework-go/v4"

var (
	_ maa.CustomRecognitionRunner = &BearingRecognition{}
)

// Register registers all custom recognition components for map-tracker package
func Register() {
	maa.AgentServerRegisterCustomRecognition("MapTrackerBearing", &BearingRecognition{})
}
