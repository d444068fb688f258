package collector

import (
	"sync/atomic"

	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

// runStats tracks operational counters for one collection run.
type runStats struct {
	APICalls           atomic.Int64
	ChannelsResolved   atomic.Int64
	VideosCollected    atomic.Int64
	CommentsCollected  atomic.Int64
	SoftFailures       atomic.Int64
	UnexpectedFailures atomic.Int64
}

// Snapshot returns the counters as a map for the summary log.
func (s *runStats) Snapshot() map[string]int64 {
	return map[string]int64{
		"api_calls":           s.APICalls.Load(),
		"channels_resolved":   s.ChannelsResolved.Load(),
		"videos_collected":    s.VideosCollected.Load(),
		"comments_collected":  s.CommentsCollected.Load(),
		"soft_failures":       s.SoftFailures.Load(),
		"unexpected_failures": s.UnexpectedFailures.Load(),
	}
}

// countFailure bumps the counter matching err's classification.
func (s *runStats) countFailure(err error) {
	if ytapi.IsSoft(err) {
		s.SoftFailures.Add(1)
		return
	}
	s.UnexpectedFailures.Add(1)
}
