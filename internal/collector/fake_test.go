package collector

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Phuong414/Youtube-analytics/internal/ytapi"
)

// fakeGateway scripts the four API operations for tests. Unscripted calls
// panic so a test can't silently pass on a path it never wired.
type fakeGateway struct {
	channelFn  func(channelID string) (*ytapi.ChannelInfo, error)
	playlistFn func(playlistID, pageToken string, pageSize int64) (*ytapi.PlaylistPage, error)
	videosFn   func(ids []string) ([]*ytapi.VideoInfo, error)
	commentsFn func(videoID, pageToken string, pageSize int64) (*ytapi.CommentPage, error)

	channelCalls  int
	playlistSizes []int64
	videoBatches  [][]string
	commentSizes  []int64
}

func (f *fakeGateway) ChannelByID(_ context.Context, channelID string) (*ytapi.ChannelInfo, error) {
	f.channelCalls++
	if f.channelFn == nil {
		panic("fakeGateway: ChannelByID not scripted")
	}
	return f.channelFn(channelID)
}

func (f *fakeGateway) PlaylistPage(_ context.Context, playlistID, pageToken string, pageSize int64) (*ytapi.PlaylistPage, error) {
	f.playlistSizes = append(f.playlistSizes, pageSize)
	if f.playlistFn == nil {
		panic("fakeGateway: PlaylistPage not scripted")
	}
	return f.playlistFn(playlistID, pageToken, pageSize)
}

func (f *fakeGateway) VideosByID(_ context.Context, ids []string) ([]*ytapi.VideoInfo, error) {
	f.videoBatches = append(f.videoBatches, ids)
	if f.videosFn == nil {
		panic("fakeGateway: VideosByID not scripted")
	}
	return f.videosFn(ids)
}

func (f *fakeGateway) CommentPage(_ context.Context, videoID, pageToken string, pageSize int64) (*ytapi.CommentPage, error) {
	f.commentSizes = append(f.commentSizes, pageSize)
	if f.commentsFn == nil {
		panic("fakeGateway: CommentPage not scripted")
	}
	return f.commentsFn(videoID, pageToken, pageSize)
}

// --- scripted errors ---

func softErr(reason string) error {
	return &ytapi.CallError{Op: "test", Kind: ytapi.KindSoft, Reason: reason, Err: errors.New(reason)}
}

func fatalErr() error {
	return &ytapi.CallError{Op: "test", Kind: ytapi.KindFatal, Reason: "keyExpired", Err: errors.New("key expired")}
}

func unexpectedErr() error {
	return &ytapi.CallError{Op: "test", Kind: ytapi.KindUnexpected, Err: errors.New("backend blew up")}
}

// --- canned payloads ---

func happyChannel(channelID string) (*ytapi.ChannelInfo, error) {
	return &ytapi.ChannelInfo{
		ID:              channelID,
		Title:           "Channel " + channelID,
		CustomURL:       "@" + channelID,
		Country:         "DE",
		SubscriberCount: 1000,
		VideoCount:      42,
		ViewCount:       99999,
		UploadsPlaylist: "UU" + channelID,
	}, nil
}

func seqIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	return ids
}

func fakeVideoInfos(ids []string) []*ytapi.VideoInfo {
	out := make([]*ytapi.VideoInfo, len(ids))
	for i, id := range ids {
		out[i] = &ytapi.VideoInfo{
			ID:           id,
			Title:        "Video " + id,
			ChannelID:    "UCfake",
			ChannelTitle: "Fake Band",
			PublishedAt:  "2024-04-01T09:00:00Z",
			Duration:     "PT3M20S",
			ViewCount:    100,
			Tags:         []string{"tag1", "tag2"},
		}
	}
	return out
}

func fakeComments(videoID string, n int) []ytapi.CommentInfo {
	out := make([]ytapi.CommentInfo, n)
	for i := range out {
		out[i] = ytapi.CommentInfo{
			ID:          fmt.Sprintf("%s-c%04d", videoID, i),
			VideoID:     videoID,
			Author:      "viewer",
			Text:        fmt.Sprintf("comment %d", i),
			PublishedAt: "2024-05-01T10:00:00Z",
			UpdatedAt:   "2024-05-01T10:00:00Z",
		}
	}
	return out
}

// servePage slices all by an integer cursor, honoring the requested page
// size; next is empty on the final page.
func servePage[T any](all []T, pageToken string, pageSize int64) (items []T, next string) {
	off := 0
	if pageToken != "" {
		off, _ = strconv.Atoi(pageToken)
	}
	end := off + int(pageSize)
	if end > len(all) {
		end = len(all)
	}
	items = all[off:end]
	if end < len(all) {
		next = strconv.Itoa(end)
	}
	return items, next
}

// pagedPlaylist serves ids as a cursor-paginated playlist.
func pagedPlaylist(ids []string) func(string, string, int64) (*ytapi.PlaylistPage, error) {
	return func(_ string, pageToken string, pageSize int64) (*ytapi.PlaylistPage, error) {
		items, next := servePage(ids, pageToken, pageSize)
		return &ytapi.PlaylistPage{VideoIDs: items, NextPageToken: next}, nil
	}
}

// pagedComments serves n generated comments per video as cursor pages.
func pagedComments(n int) func(string, string, int64) (*ytapi.CommentPage, error) {
	return func(videoID string, pageToken string, pageSize int64) (*ytapi.CommentPage, error) {
		items, next := servePage(fakeComments(videoID, n), pageToken, pageSize)
		return &ytapi.CommentPage{Comments: items, NextPageToken: next}, nil
	}
}

// testConfig returns a Config with zero delays so nothing paces in tests.
func testConfig(channelIDs ...string) Config {
	return Config{
		APIKey:      "test-key",
		ChannelIDs:  channelIDs,
		MaxVideos:   200,
		MaxComments: 500,
		OutputDir:   "",
	}
}
