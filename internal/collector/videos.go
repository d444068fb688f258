package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

// maxPageSize is the largest page a paginated list call may request.
const maxPageSize = 100

// batchSize is the hard ceiling of the batched video lookup. External API
// limit, not configurable.
const batchSize = 50

// listVideoIDs walks the channel's uploads playlist and returns up to
// MaxVideos identifiers in the API's reverse-chronological order. The
// playlist is resolved here, so a soft-failed channel resolver does not
// block video collection. Failures below fatal truncate the walk and
// return whatever was collected.
func (c *Collector) listVideoIDs(ctx context.Context, channelID string) ([]string, error) {
	c.stats.APICalls.Add(1)
	info, err := c.gw.ChannelByID(ctx, channelID)
	if err != nil {
		if ytapi.IsFatal(err) {
			return nil, fmt.Errorf("uploads playlist for %s: %w", channelID, err)
		}
		c.stats.countFailure(err)
		slog.Warn("videos: uploads playlist lookup failed",
			slog.String("channel_id", channelID),
			slog.String("error", truncErr(err)))
		return nil, nil
	}
	if info.UploadsPlaylist == "" {
		slog.Warn("videos: channel has no uploads playlist",
			slog.String("channel_id", channelID))
		return nil, nil
	}

	var ids []string
	pageToken := ""
	for len(ids) < c.cfg.MaxVideos {
		size := int64(min(maxPageSize, c.cfg.MaxVideos-len(ids)))

		c.stats.APICalls.Add(1)
		page, err := c.gw.PlaylistPage(ctx, info.UploadsPlaylist, pageToken, size)
		if err != nil {
			if ytapi.IsFatal(err) {
				return nil, fmt.Errorf("list videos for %s: %w", channelID, err)
			}
			c.stats.countFailure(err)
			slog.Warn("videos: page fetch failed, stopping walk",
				slog.String("channel_id", channelID),
				slog.Int("collected", len(ids)),
				slog.String("error", truncErr(err)))
			break
		}
		if len(page.VideoIDs) == 0 {
			break
		}
		ids = append(ids, page.VideoIDs...)
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	if len(ids) > c.cfg.MaxVideos {
		ids = ids[:c.cfg.MaxVideos]
	}

	slog.Debug("videos: walk complete",
		slog.String("channel_id", channelID),
		slog.Int("ids", len(ids)))
	return ids, nil
}

// fetchVideoDetails resolves IDs to full records in batches of batchSize.
// A batch that fails outright is skipped entirely; there is no
// partial-batch retry. Output order follows batch and within-batch API
// response order.
func (c *Collector) fetchVideoDetails(ctx context.Context, ids []string) ([]*VideoRecord, error) {
	var recs []*VideoRecord
	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		batch := ids[start:end]

		c.stats.APICalls.Add(1)
		infos, err := c.gw.VideosByID(ctx, batch)
		if err != nil {
			if ytapi.IsFatal(err) {
				return nil, fmt.Errorf("fetch video details: %w", err)
			}
			c.stats.countFailure(err)
			slog.Warn("videos: batch fetch failed, skipping",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.String("error", truncErr(err)))
			continue
		}
		for _, info := range infos {
			recs = append(recs, videoRecord(info))
		}
	}
	c.stats.VideosCollected.Add(int64(len(recs)))
	return recs, nil
}

// videoRecord maps API video details onto a row, deriving the keyword
// fields from the title.
func videoRecord(info *ytapi.VideoInfo) *VideoRecord {
	return &VideoRecord{
		VideoID:      info.ID,
		ChannelID:    info.ChannelID,
		ChannelName:  info.ChannelTitle,
		Title:        info.Title,
		TitleLength:  runeLen(info.Title),
		Description:  info.Description,
		PublishedAt:  info.PublishedAt,
		Duration:     info.Duration,
		ViewCount:    info.ViewCount,
		LikeCount:    info.LikeCount,
		CommentCount: info.CommentCount,
		Tags:         strings.Join(info.Tags, "|"),
		TagCount:     len(info.Tags),
		CategoryID:   info.CategoryID,
		ThumbnailURL: info.ThumbnailURL,
		ContentType:  classifyContent(info.Title).String(),
		HasCollab:    hasCollab(info.Title),
	}
}
