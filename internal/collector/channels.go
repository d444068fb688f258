package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

// resolveChannel fetches channel statistics and snippet fields. A nil
// record with a nil error means the lookup failed non-fatally; video and
// comment collection for the channel still proceeds.
func (c *Collector) resolveChannel(ctx context.Context, channelID string) (*ChannelRecord, error) {
	c.stats.APICalls.Add(1)
	info, err := c.gw.ChannelByID(ctx, channelID)
	if err != nil {
		if ytapi.IsFatal(err) {
			return nil, fmt.Errorf("resolve channel %s: %w", channelID, err)
		}
		c.stats.countFailure(err)
		if ytapi.IsSoft(err) {
			slog.Warn("resolve: channel unavailable",
				slog.String("channel_id", channelID),
				slog.Any("error", err))
		} else {
			slog.Warn("resolve: channel lookup failed",
				slog.String("channel_id", channelID),
				slog.String("error", truncErr(err)))
		}
		return nil, nil
	}

	c.stats.ChannelsResolved.Add(1)
	slog.Debug("resolve: channel ok",
		slog.String("channel_id", channelID),
		slog.String("title", info.Title))

	return &ChannelRecord{
		ChannelID:       info.ID,
		ChannelName:     info.Title,
		SubscriberCount: info.SubscriberCount,
		TotalViewCount:  info.ViewCount,
		TotalVideoCount: info.VideoCount,
		Country:         info.Country,
		CustomURL:       info.CustomURL,
	}, nil
}
