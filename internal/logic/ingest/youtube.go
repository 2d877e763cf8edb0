package ingest

import (
	"regexp"
)

var (
	youtubeURLPattern = regexp.MustCompile(
		`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/(watch\?v=|embed/|v/|.+\?v=)?([^&=%\?]{11})`)
	youtubeVideoIDPattern = regexp.MustCompile(
		`(?:v=|/embed/|/shorts/|/watch\?v=|youtu\.be/|/v/)([a-zA-Z0-9_-]{11})`)
)

// IsYouTubeURL 判断链接是否为YouTube视频链接
func IsYouTubeURL(url string) bool {
	return youtubeURLPattern.MatchString(url)
}

// ExtractVideoID 从YouTube链接中提取11位视频ID，提取不到返回空串
func ExtractVideoID(url string) string {
	match := youtubeVideoIDPattern.FindStringSubmatch(url)
	if len(match) == 2 && len(match[1]) == 11 {
		return match[1]
	}
	return ""
}
