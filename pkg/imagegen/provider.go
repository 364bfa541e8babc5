package imagegen

import "context"

// ImageProvider generates an image for a text prompt and returns it base64-encoded.
type ImageProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the backing image model, for display only.
	Model() string
}
