package translation

import (
	"context"
	"log/slog"

	"translatesrt/internal/cache"
	"translatesrt/internal/logging"
)

// Memo is the persistence surface Cached needs; *cache.Store satisfies it.
type Memo interface {
	Lookup(ctx context.Context, key cache.Key) (string, bool, error)
	Put(ctx context.Context, key cache.Key, translated string) error
}

// Cached consults a Memo before delegating to the wrapped Translator and
// records non-empty results. Memo failures are logged and otherwise ignored.
type Cached struct {
	next    Translator
	memo    Memo
	backend string
	source  string
	target  string
	logger  *slog.Logger

	hits   int
	misses int
}

// NewCached wraps next with memo, keying entries by backend and language pair.
func NewCached(next Translator, memo Memo, backend, source, target string, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Cached{
		next:    next,
		memo:    memo,
		backend: backend,
		source:  source,
		target:  target,
		logger:  logging.NewComponentLogger(logger, "translation_cache"),
	}
}

// Translate implements Translator.
func (c *Cached) Translate(ctx context.Context, text string) (string, error) {
	if c.memo == nil {
		return c.next.Translate(ctx, text)
	}
	key := cache.Key{Backend: c.backend, Source: c.source, Target: c.target, Text: text}

	cached, ok, err := c.memo.Lookup(ctx, key)
	if err != nil {
		logging.WarnWithContext(c.logger, "translation cache lookup failed", "cache_lookup_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "delete the cache database if this persists"),
			logging.String(logging.FieldImpact, "sentence will be translated again"),
		)
	} else if ok {
		c.hits++
		c.logger.Debug("translation cache hit", logging.Int("text_chars", len(text)))
		return cached, nil
	}
	c.misses++

	translated, err := c.next.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	if err := c.memo.Put(ctx, key, translated); err != nil {
		logging.WarnWithContext(c.logger, "translation cache store failed", "cache_store_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "translation not reused on the next run"),
		)
	}
	return translated, nil
}

// Hits returns how many lookups were served from the memo.
func (c *Cached) Hits() int { return c.hits }

// Misses returns how many lookups went to the wrapped Translator.
func (c *Cached) Misses() int { return c.misses }
