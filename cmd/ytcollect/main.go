// ytcollect — YouTube channel, video & comment metadata collector.
//
// Walks every configured channel strictly in sequence: channel statistics,
// the uploads playlist, per-video details, then top-level comment threads,
// and writes the result as three CSV tables under the output directory.
//
// Configuration comes from the environment (a .env file is honored when
// present); YOUTUBE_API_KEY and YT_CHANNELS are required.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"

	"github.com/Phuong414/Youtube-analytics/internal/collector"
	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

func main() {
	_ = godotenv.Load()

	cfg := collector.Config{
		APIKey:       env.Str("YOUTUBE_API_KEY", ""),
		ChannelIDs:   env.List("YT_CHANNELS", ""),
		MaxVideos:    env.Int("YT_MAX_VIDEOS", 200),
		MaxComments:  env.Int("YT_MAX_COMMENTS", 500),
		OutputDir:    env.Str("YT_OUTPUT_DIR", "data/raw"),
		PageDelay:    env.Duration("YT_PAGE_DELAY", 100*time.Millisecond),
		VideoDelay:   env.Duration("YT_VIDEO_DELAY", 200*time.Millisecond),
		ChannelDelay: env.Duration("YT_CHANNEL_DELAY", time.Second),
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, err := ytapi.NewClient(ctx, cfg.APIKey)
	if err != nil {
		slog.Error("youtube client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	c := collector.New(cfg, gw)
	slog.Info("starting ytcollect",
		slog.String("run_id", c.RunID()),
		slog.Int("channels", len(cfg.ChannelIDs)),
		slog.Int("max_videos", cfg.MaxVideos),
		slog.Int("max_comments", cfg.MaxComments),
		slog.String("output_dir", cfg.OutputDir),
	)

	if err := c.Run(ctx); err != nil {
		slog.Error("collection aborted", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
