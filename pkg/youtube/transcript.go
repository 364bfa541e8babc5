package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	videoIDPattern      = regexp.MustCompile(`(?:v=|youtu\.be/|embed/|shorts/)([A-Za-z0-9_-]{11})`)
	captionsJSONPattern = regexp.MustCompile(`"captionTracks":(\[.*?\])`)
	tagPattern          = regexp.MustCompile(`<[^>]+>`)
)

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
}

// Fetcher downloads video transcripts from the public caption endpoints.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// VideoID extracts the 11-character video id from any common URL shape.
func VideoID(rawURL string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", fmt.Errorf("could not extract video id from %q", rawURL)
	}
	return m[1], nil
}

// Transcript fetches the caption track of a video and returns it as plain
// text. English tracks are preferred when available.
func (f *Fetcher) Transcript(ctx context.Context, videoURL string) (string, error) {
	id, err := VideoID(videoURL)
	if err != nil {
		return "", err
	}

	watchURL := "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
	page, err := f.get(ctx, watchURL)
	if err != nil {
		return "", fmt.Errorf("fetch watch page: %w", err)
	}

	m := captionsJSONPattern.FindSubmatch(page)
	if len(m) < 2 {
		return "", fmt.Errorf("no captions available for video %s", id)
	}

	var tracks []captionTrack
	if err := json.Unmarshal(m[1], &tracks); err != nil {
		return "", fmt.Errorf("parse caption tracks: %w", err)
	}
	if len(tracks) == 0 {
		return "", fmt.Errorf("no captions available for video %s", id)
	}

	track := tracks[0]
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			track = t
			break
		}
	}

	raw, err := f.get(ctx, track.BaseURL)
	if err != nil {
		return "", fmt.Errorf("fetch caption track: %w", err)
	}

	return ParseTimedText(string(raw)), nil
}

// ParseTimedText flattens the timedtext XML into whitespace-normalized text.
func ParseTimedText(xml string) string {
	text := tagPattern.ReplaceAllString(xml, " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	return strings.Join(strings.Fields(text), " ")
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return io.ReadAll(resp.Body)
}
