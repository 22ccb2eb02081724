package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://images.igdb.com/igdb/image/upload/t_cover_big/co1rcf.jpg",
		ImageURL("co1rcf", ""))
	assert.Equal(t,
		"https://images.igdb.com/igdb/image/upload/t_thumb/co1rcf.jpg",
		ImageURL("co1rcf", "thumb"))
	assert.Empty(t, ImageURL("", "thumb"))
}

func TestYouTubeURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", YouTubeURL("dQw4w9WgXcQ"))
}
