package igdb

import "fmt"

const imageBaseURL = "https://images.igdb.com/igdb/image/upload"

// ImageURL builds the CDN URL for a catalog image. Common sizes are
// "cover_big", "screenshot_big" and "thumb".
func ImageURL(imageID, size string) string {
	if imageID == "" {
		return ""
	}
	if size == "" {
		size = "cover_big"
	}
	return fmt.Sprintf("%s/t_%s/%s.jpg", imageBaseURL, size, imageID)
}

func YouTubeURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
