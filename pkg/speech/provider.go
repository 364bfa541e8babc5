package speech

import "context"

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Synthesizer converts text into spoken audio (mp3 bytes).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
