package youtube

import (
	"regexp"

	"comment-pilot/apperrors"
)

// The accepted URL shapes: watch?v=, youtu.be/, /embed/ and /v/.
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#/]+)`),
}

// ExtractVideoID pulls the video identifier out of a watch URL.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoURLPatterns {
		if m := pattern.FindStringSubmatch(url); len(m) == 2 && m[1] != "" {
			return m[1], nil
		}
	}
	return "", apperrors.NewValidation("not a recognized video URL: %s", url)
}
