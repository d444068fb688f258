package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/strutil"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Phuong414/Youtube-analytics/internal/csvout"
	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

// errTextLimit caps logged error text so one oversized response body
// cannot flood the log.
const errTextLimit = 200

// Collector owns one run: it walks the configured channels strictly
// sequentially and accumulates records until save time. No state is shared
// across channel iterations except the three append-only accumulators.
type Collector struct {
	cfg   Config
	gw    ytapi.Gateway
	runID string

	pageLimit    *rate.Limiter
	videoLimit   *rate.Limiter
	channelLimit *rate.Limiter

	stats runStats

	channels []*ChannelRecord
	videos   []*VideoRecord
	comments []*CommentRecord
}

// New builds a Collector for one run.
func New(cfg Config, gw ytapi.Gateway) *Collector {
	return &Collector{
		cfg:          cfg,
		gw:           gw,
		runID:        uuid.NewString(),
		pageLimit:    limiter(cfg.PageDelay),
		videoLimit:   limiter(cfg.VideoDelay),
		channelLimit: limiter(cfg.ChannelDelay),
	}
}

// RunID identifies this run in logs.
func (c *Collector) RunID() string { return c.runID }

// Run executes the whole pipeline: every configured channel in order, then
// the CSV save. A fatal credential failure aborts immediately and nothing
// is written; already-collected records stay in memory only.
func (c *Collector) Run(ctx context.Context) error {
	start := time.Now()

	for i, id := range c.cfg.ChannelIDs {
		if i > 0 {
			if err := c.pace(ctx, c.channelLimit); err != nil {
				return err
			}
		}
		if err := c.collectChannel(ctx, id); err != nil {
			return err
		}
	}

	if err := c.save(); err != nil {
		return err
	}

	snap := c.stats.Snapshot()
	slog.Info("collect: run complete",
		slog.String("run_id", c.runID),
		slog.Int("channels", len(c.channels)),
		slog.Int("videos", len(c.videos)),
		slog.Int("comments", len(c.comments)),
		slog.Int64("api_calls", snap["api_calls"]),
		slog.Int64("soft_failures", snap["soft_failures"]),
		slog.Int64("unexpected_failures", snap["unexpected_failures"]),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// collectChannel runs the per-channel state machine: resolve → list video
// IDs → fetch details → per-video comment walk. Only fatal errors come
// back; everything else degrades in place.
func (c *Collector) collectChannel(ctx context.Context, channelID string) error {
	slog.Info("collect: channel start", slog.String("channel_id", channelID))

	rec, err := c.resolveChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if rec != nil {
		c.channels = append(c.channels, rec)
	}

	ids, err := c.listVideoIDs(ctx, channelID)
	if err != nil {
		return err
	}

	vids, err := c.fetchVideoDetails(ctx, ids)
	if err != nil {
		return err
	}
	c.videos = append(c.videos, vids...)

	for i, v := range vids {
		if i > 0 {
			if err := c.pace(ctx, c.videoLimit); err != nil {
				return err
			}
		}
		comments, err := c.collectComments(ctx, v.VideoID)
		if err != nil {
			return err
		}
		c.comments = append(c.comments, comments...)
	}

	slog.Info("collect: channel done",
		slog.String("channel_id", channelID),
		slog.Int("videos", len(vids)))
	return nil
}

// save writes the three tables. Empty tables are skipped with a warning by
// the writer.
func (c *Collector) save() error {
	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{"channels", channelHeader, recordRows(c.channels)},
		{"videos", videoHeader, recordRows(c.videos)},
		{"comments", commentHeader, recordRows(c.comments)},
	}
	for _, t := range tables {
		path, err := csvout.Write(c.cfg.OutputDir, t.name, t.header, t.rows)
		if err != nil {
			return fmt.Errorf("save %s: %w", t.name, err)
		}
		if path != "" {
			slog.Info("collect: table written",
				slog.String("path", path),
				slog.Int("rows", len(t.rows)))
		}
	}
	return nil
}

// limiter builds a burst-1 limiter for a fixed delay. Zero or negative
// means no pacing.
func limiter(d time.Duration) *rate.Limiter {
	if d <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(d), 1)
}

// pace blocks until the limiter's next slot, honoring cancellation.
func (c *Collector) pace(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}
	return l.Wait(ctx)
}

func truncErr(err error) string {
	return strutil.TruncateWith(err.Error(), errTextLimit, "...")
}
