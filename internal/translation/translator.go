package translation

import "context"

// Translator converts merged source text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Backend performs a single translation request for an explicit language pair.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, text string) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
