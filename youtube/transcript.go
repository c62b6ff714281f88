package youtube

import (
	"context"
	"io"
	"strings"
)

// Transcript fetches the video's caption track as plain text. Returns the
// empty string without error when the video has no usable captions; the
// caller treats that as "transcript unavailable" and generates from metadata
// only.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	listResp, err := c.svc.Captions.List([]string{"snippet"}, videoID).
		Context(ctx).
		Do()
	if err != nil {
		return "", c.mapError("captions list", err)
	}
	if len(listResp.Items) == 0 {
		return "", nil
	}

	// Prefer an English track, fall back to the first available one.
	track := listResp.Items[0]
	for _, item := range listResp.Items {
		if item.Snippet != nil && strings.HasPrefix(item.Snippet.Language, "en") {
			track = item
			break
		}
	}
	if track.Id == "" {
		return "", nil
	}

	resp, err := c.svc.Captions.Download(track.Id).
		Tfmt("srt").
		Context(ctx).
		Download()
	if err != nil {
		return "", c.mapError("captions download", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.mapError("captions read", err)
	}

	return ParseSRT(string(raw)), nil
}

// ParseSRT strips sequence numbers and timestamps from an SRT document,
// returning the caption text joined with single spaces.
func ParseSRT(srt string) string {
	blocks := strings.Split(strings.ReplaceAll(srt, "\r\n", "\n"), "\n\n")

	var parts []string
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		// Line 1 is the sequence number, line 2 the timestamp range.
		if len(lines) < 3 {
			continue
		}
		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
