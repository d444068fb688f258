package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

// collectComments walks a video's top-level comment threads up to
// MaxComments, pacing every page after the first. Disabled or unavailable
// comments are a normal terminal state, not an error.
func (c *Collector) collectComments(ctx context.Context, videoID string) ([]*CommentRecord, error) {
	var recs []*CommentRecord
	pageToken := ""
	for len(recs) < c.cfg.MaxComments {
		if len(recs) > 0 {
			if err := c.pace(ctx, c.pageLimit); err != nil {
				return nil, err
			}
		}
		size := int64(min(maxPageSize, c.cfg.MaxComments-len(recs)))

		c.stats.APICalls.Add(1)
		page, err := c.gw.CommentPage(ctx, videoID, pageToken, size)
		if err != nil {
			if ytapi.IsFatal(err) {
				return nil, fmt.Errorf("comments for %s: %w", videoID, err)
			}
			c.stats.countFailure(err)
			if ytapi.IsSoft(err) {
				slog.Debug("comments: unavailable",
					slog.String("video_id", videoID),
					slog.Any("error", err))
			} else {
				slog.Warn("comments: page fetch failed, stopping walk",
					slog.String("video_id", videoID),
					slog.Int("collected", len(recs)),
					slog.String("error", truncErr(err)))
			}
			break
		}
		if len(page.Comments) == 0 {
			break
		}
		for _, ci := range page.Comments {
			recs = append(recs, commentRecord(ci))
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	if len(recs) > c.cfg.MaxComments {
		recs = recs[:c.cfg.MaxComments]
	}

	c.stats.CommentsCollected.Add(int64(len(recs)))
	slog.Debug("comments: walk complete",
		slog.String("video_id", videoID),
		slog.Int("comments", len(recs)))
	return recs, nil
}

func commentRecord(ci ytapi.CommentInfo) *CommentRecord {
	return &CommentRecord{
		CommentID:     ci.ID,
		VideoID:       ci.VideoID,
		Author:        ci.Author,
		Text:          ci.Text,
		LikeCount:     ci.LikeCount,
		ReplyCount:    ci.ReplyCount,
		PublishedAt:   ci.PublishedAt,
		UpdatedAt:     ci.UpdatedAt,
		CommentLength: runeLen(ci.Text),
		HasEmoji:      hasEmoji(ci.Text),
	}
}
