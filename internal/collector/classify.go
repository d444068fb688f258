package collector

import (
	"strings"
	"unicode/utf8"
)

// ContentType buckets a video by title keywords.
type ContentType int

const (
	ContentOther ContentType = iota // default
	ContentMusicVideo
	ContentLive
	ContentAcoustic
	ContentLyricVideo
	ContentVlog
)

func (t ContentType) String() string {
	switch t {
	case ContentMusicVideo:
		return "music_video"
	case ContentLive:
		return "live"
	case ContentAcoustic:
		return "acoustic"
	case ContentLyricVideo:
		return "lyric_video"
	case ContentVlog:
		return "vlog"
	default:
		return "other"
	}
}

// classifyContent buckets a title by simple pattern matching, first match
// wins, fixed priority order. Pure string matching, no IO.
func classifyContent(title string) ContentType {
	t := strings.ToLower(title)

	musicPatterns := []string{"official video", "music video"}
	for _, p := range musicPatterns {
		if strings.Contains(t, p) {
			return ContentMusicVideo
		}
	}

	livePatterns := []string{"live", "konzert"}
	for _, p := range livePatterns {
		if strings.Contains(t, p) {
			return ContentLive
		}
	}

	acousticPatterns := []string{"acoustic", "akustik"}
	for _, p := range acousticPatterns {
		if strings.Contains(t, p) {
			return ContentAcoustic
		}
	}

	lyricPatterns := []string{"lyric", "lyrics"}
	for _, p := range lyricPatterns {
		if strings.Contains(t, p) {
			return ContentLyricVideo
		}
	}

	vlogPatterns := []string{"vlog", "behind"}
	for _, p := range vlogPatterns {
		if strings.Contains(t, p) {
			return ContentVlog
		}
	}

	return ContentOther
}

// collabPatterns is deliberately loose: the lone "x" also matches inside
// ordinary words ("Remix"), and "mit" matches German titles broadly.
var collabPatterns = []string{"feat", "ft.", "featuring", "mit", "&", "x"}

// hasCollab reports whether a title looks like a collaboration.
func hasCollab(title string) bool {
	t := strings.ToLower(title)
	for _, p := range collabPatterns {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

// hasEmoji is a coarse non-ASCII check (any code point above 127), not true
// emoji detection.
func hasEmoji(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}

// runeLen counts characters, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
