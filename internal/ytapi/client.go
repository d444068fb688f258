// Package ytapi adapts the YouTube Data API v3 to the four operations the
// collection pipeline needs: channel lookup, uploads-playlist pages, video
// detail batches and comment-thread pages. Failures come back classified
// (fatal / soft / unexpected) so callers can branch without inspecting
// transport details.
package ytapi

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

// maxVideosPerCall is the hard ceiling the videos.list endpoint accepts.
const maxVideosPerCall = 50

// ChannelInfo is the subset of channels.list output the pipeline records.
type ChannelInfo struct {
	ID              string
	Title           string
	CustomURL       string
	Country         string
	SubscriberCount uint64
	VideoCount      uint64
	ViewCount       uint64
	UploadsPlaylist string
}

// PlaylistPage is one page of an uploads-playlist walk.
type PlaylistPage struct {
	VideoIDs      []string
	NextPageToken string
}

// VideoInfo is the subset of videos.list output the pipeline records.
type VideoInfo struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	PublishedAt  string
	Duration     string
	CategoryID   string
	Tags         []string
	ThumbnailURL string
	ViewCount    uint64
	LikeCount    uint64
	CommentCount uint64
}

// CommentInfo is one top-level comment. Replies are counted, not fetched.
type CommentInfo struct {
	ID          string
	VideoID     string
	Author      string
	Text        string
	LikeCount   int64
	ReplyCount  int64
	PublishedAt string
	UpdatedAt   string
}

// CommentPage is one page of a video's top-level comment threads.
type CommentPage struct {
	Comments      []CommentInfo
	NextPageToken string
}

// Gateway is the seam between the pipeline and the Data API. The pipeline
// depends on this; tests drive it with scripted fakes.
type Gateway interface {
	ChannelByID(ctx context.Context, channelID string) (*ChannelInfo, error)
	PlaylistPage(ctx context.Context, playlistID, pageToken string, pageSize int64) (*PlaylistPage, error)
	VideosByID(ctx context.Context, ids []string) ([]*VideoInfo, error)
	CommentPage(ctx context.Context, videoID, pageToken string, pageSize int64) (*CommentPage, error)
}

// Client implements Gateway against the real Data API v3.
type Client struct {
	svc *youtube.Service
}

// Option customizes client construction.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// NewClient builds a Data API v3 client authenticated by API key.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	var co clientOptions
	for _, opt := range opts {
		opt(&co)
	}
	svcOpts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if co.httpClient != nil {
		svcOpts = append(svcOpts, option.WithHTTPClient(co.httpClient))
	}
	svc, err := youtube.NewService(ctx, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ChannelByID fetches snippet, statistics and contentDetails for one channel.
func (c *Client) ChannelByID(ctx context.Context, channelID string) (*ChannelInfo, error) {
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("channels.list", err)
	}
	if len(resp.Items) == 0 {
		return nil, classify("channels.list", ErrChannelNotFound)
	}
	ch := resp.Items[0]
	info := &ChannelInfo{ID: ch.Id}
	if sn := ch.Snippet; sn != nil {
		info.Title = sn.Title
		info.CustomURL = sn.CustomUrl
		info.Country = sn.Country
	}
	if st := ch.Statistics; st != nil {
		info.SubscriberCount = st.SubscriberCount
		info.VideoCount = st.VideoCount
		info.ViewCount = st.ViewCount
	}
	if cd := ch.ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		info.UploadsPlaylist = cd.RelatedPlaylists.Uploads
	}
	return info, nil
}

// PlaylistPage fetches one page of video IDs from a playlist, carrying the
// pagination cursor. An empty pageToken starts the walk.
func (c *Client) PlaylistPage(ctx context.Context, playlistID, pageToken string, pageSize int64) (*PlaylistPage, error) {
	call := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, classify("playlistItems.list", err)
	}
	page := &PlaylistPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		if id := item.Snippet.ResourceId.VideoId; id != "" {
			page.VideoIDs = append(page.VideoIDs, id)
		}
	}
	return page, nil
}

// VideosByID fetches details for up to 50 videos in one call. Order of the
// result follows the API response, which may differ from the input order.
func (c *Client) VideosByID(ctx context.Context, ids []string) ([]*VideoInfo, error) {
	if len(ids) > maxVideosPerCall {
		return nil, fmt.Errorf("videos.list: %d ids exceeds the per-call limit of %d", len(ids), maxVideosPerCall)
	}
	resp, err := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("videos.list", err)
	}
	out := make([]*VideoInfo, 0, len(resp.Items))
	for _, v := range resp.Items {
		out = append(out, videoInfo(v))
	}
	return out, nil
}

func videoInfo(v *youtube.Video) *VideoInfo {
	info := &VideoInfo{ID: v.Id}
	if sn := v.Snippet; sn != nil {
		info.Title = sn.Title
		info.Description = sn.Description
		info.ChannelID = sn.ChannelId
		info.ChannelTitle = sn.ChannelTitle
		info.PublishedAt = sn.PublishedAt
		info.CategoryID = sn.CategoryId
		info.Tags = sn.Tags
		info.ThumbnailURL = thumbnailURL(sn.Thumbnails)
	}
	if st := v.Statistics; st != nil {
		info.ViewCount = st.ViewCount
		info.LikeCount = st.LikeCount
		info.CommentCount = st.CommentCount
	}
	if cd := v.ContentDetails; cd != nil {
		info.Duration = cd.Duration
	}
	return info
}

// thumbnailURL prefers the high variant, matching what the dataset has
// always carried, and degrades through medium and default.
func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

// CommentPage fetches one page of top-level comment threads for a video,
// newest first, rendered as plain text.
func (c *Client) CommentPage(ctx context.Context, videoID, pageToken string, pageSize int64) (*CommentPage, error) {
	call := c.svc.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(pageSize).
		Order("time").
		TextFormat("plainText").
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, classify("commentThreads.list", err)
	}
	page := &CommentPage{NextPageToken: resp.NextPageToken}
	for _, th := range resp.Items {
		if th.Snippet == nil || th.Snippet.TopLevelComment == nil {
			continue
		}
		top := th.Snippet.TopLevelComment
		ci := CommentInfo{
			ID:         top.Id,
			VideoID:    videoID,
			ReplyCount: th.Snippet.TotalReplyCount,
		}
		if sn := top.Snippet; sn != nil {
			ci.Author = sn.AuthorDisplayName
			ci.Text = sn.TextDisplay
			ci.LikeCount = sn.LikeCount
			ci.PublishedAt = sn.PublishedAt
			ci.UpdatedAt = sn.UpdatedAt
		}
		page.Comments = append(page.Comments, ci)
	}
	return page, nil
}
