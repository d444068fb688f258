package collector

import "strconv"

// --- channel records ---

// ChannelRecord is one row of channels.csv, created once per configured
// channel per run.
type ChannelRecord struct {
	ChannelID       string
	ChannelName     string
	SubscriberCount uint64
	TotalViewCount  uint64
	TotalVideoCount uint64
	Country         string
	CustomURL       string
}

var channelHeader = []string{
	"channel_id", "channel_name", "subscriber_count", "total_view_count",
	"total_video_count", "country", "custom_url",
}

func (r *ChannelRecord) row() []string {
	return []string{
		r.ChannelID,
		r.ChannelName,
		strconv.FormatUint(r.SubscriberCount, 10),
		strconv.FormatUint(r.TotalViewCount, 10),
		strconv.FormatUint(r.TotalVideoCount, 10),
		r.Country,
		r.CustomURL,
	}
}

// --- video records ---

// VideoRecord is one row of videos.csv. ContentType and HasCollab are
// derived from the title; Tags is the pipe-joined tag list.
type VideoRecord struct {
	VideoID      string
	ChannelID    string
	ChannelName  string
	Title        string
	TitleLength  int
	Description  string
	PublishedAt  string
	Duration     string
	ViewCount    uint64
	LikeCount    uint64
	CommentCount uint64
	Tags         string
	TagCount     int
	CategoryID   string
	ThumbnailURL string
	ContentType  string
	HasCollab    bool
}

var videoHeader = []string{
	"video_id", "channel_id", "channel_name", "title", "title_length",
	"description", "published_at", "duration", "view_count", "like_count",
	"comment_count", "tags", "tag_count", "category_id", "thumbnail_url",
	"content_type", "has_collab",
}

func (r *VideoRecord) row() []string {
	return []string{
		r.VideoID,
		r.ChannelID,
		r.ChannelName,
		r.Title,
		strconv.Itoa(r.TitleLength),
		r.Description,
		r.PublishedAt,
		r.Duration,
		strconv.FormatUint(r.ViewCount, 10),
		strconv.FormatUint(r.LikeCount, 10),
		strconv.FormatUint(r.CommentCount, 10),
		r.Tags,
		strconv.Itoa(r.TagCount),
		r.CategoryID,
		r.ThumbnailURL,
		r.ContentType,
		strconv.FormatBool(r.HasCollab),
	}
}

// --- comment records ---

// CommentRecord is one row of comments.csv. ReplyCount aggregates direct
// replies; replies themselves are never fetched.
type CommentRecord struct {
	CommentID     string
	VideoID       string
	Author        string
	Text          string
	LikeCount     int64
	ReplyCount    int64
	PublishedAt   string
	UpdatedAt     string
	CommentLength int
	HasEmoji      bool
}

var commentHeader = []string{
	"comment_id", "video_id", "author", "text", "like_count", "reply_count",
	"published_at", "updated_at", "comment_length", "has_emoji",
}

func (r *CommentRecord) row() []string {
	return []string{
		r.CommentID,
		r.VideoID,
		r.Author,
		r.Text,
		strconv.FormatInt(r.LikeCount, 10),
		strconv.FormatInt(r.ReplyCount, 10),
		r.PublishedAt,
		r.UpdatedAt,
		strconv.Itoa(r.CommentLength),
		strconv.FormatBool(r.HasEmoji),
	}
}

// recordRows renders a record slice for the tabular writer, preserving
// collection order.
func recordRows[R interface{ row() []string }](recs []R) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, r.row())
	}
	return rows
}
