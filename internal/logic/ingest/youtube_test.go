package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsYouTubeURL(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"http://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	for _, url := range valid {
		assert.True(t, IsYouTubeURL(url), url)
	}

	invalid := []string{
		"",
		"https://vimeo.com/123456",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"not a url",
	}
	for _, url := range invalid {
		assert.False(t, IsYouTubeURL(url), url)
	}
}

func TestExtractVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":   "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":  "dQw4w9WgXcQ",
		"https://vimeo.com/123456":                    "",
	}
	for url, want := range cases {
		assert.Equal(t, want, ExtractVideoID(url), url)
	}
}

func TestAllowedExtension(t *testing.T) {
	for _, ext := range []string{"pdf", "doc", "docx", "txt", "PDF"} {
		assert.True(t, AllowedExtension(ext), ext)
	}
	for _, ext := range []string{"exe", "js", "png", ""} {
		assert.False(t, AllowedExtension(ext), ext)
	}
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("report.PDF")
	assert.True(t, strings.HasSuffix(key, ".pdf"), key)

	// 同名文件生成的对象名不应冲突
	other := BuildObjectKey("report.PDF")
	assert.NotEqual(t, key, other)
}
