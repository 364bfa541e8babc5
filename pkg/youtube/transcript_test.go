package youtube

import (
	"testing"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts url", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"not a video url", "https://example.com/page", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VideoID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTimedText(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			"simple track",
			`<transcript><text start="0" dur="2">hello</text><text start="2" dur="2">world</text></transcript>`,
			"hello world",
		},
		{
			"entities decoded",
			`<text>Tom &amp; Jerry say &quot;hi&quot;, it&#39;s fun</text>`,
			`Tom & Jerry say "hi", it's fun`,
		},
		{
			"whitespace collapsed",
			"<text>a\n  b\t c</text>",
			"a b c",
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTimedText(tt.xml); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
