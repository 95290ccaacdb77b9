package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalRays      int           // Total number of rays traced
	HorizonHits    int           // Rays that fell into the event horizon
	DiskHits       int           // Rays that struck the accretion disk
	BackgroundRays int           // Rays that escaped to the starfield
	RenderTime     time.Duration // Wall-clock time for the frame
}

// record updates the counters with the terminal state of a single ray
func (s *RenderStats) record(outcome Outcome) {
	s.TotalRays++
	switch outcome {
	case OutcomeHorizon:
		s.HorizonHits++
	case OutcomeDisk:
		s.DiskHits++
	case OutcomeBackground:
		s.BackgroundRays++
	}
}
