// Package collector walks configured YouTube channels in strict sequence
// and accumulates channel, video and comment records for CSV output. All
// remote access goes through ytapi.Gateway; all tuning is injected via
// Config.
package collector

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all pipeline configuration, injected from main.
type Config struct {
	APIKey       string
	ChannelIDs   []string
	MaxVideos    int    // per-channel video cap
	MaxComments  int    // per-video comment cap
	OutputDir    string // destination for the CSV files
	PageDelay    time.Duration
	VideoDelay   time.Duration
	ChannelDelay time.Duration
}

// Validate rejects configurations that would burn quota before failing.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("config: YOUTUBE_API_KEY is not set")
	}
	if len(c.ChannelIDs) == 0 {
		return errors.New("config: no channels configured")
	}
	if c.MaxVideos <= 0 {
		return fmt.Errorf("config: max videos must be positive, got %d", c.MaxVideos)
	}
	if c.MaxComments <= 0 {
		return fmt.Errorf("config: max comments must be positive, got %d", c.MaxComments)
	}
	return nil
}
