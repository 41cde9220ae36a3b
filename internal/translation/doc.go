// Package translation turns merged sentence text into target-language text.
//
// A Backend performs one request against a concrete service (googleweb,
// openrouter, openai). The Gateway wraps a Backend with the run's language
// pair, a linear retry schedule, and punctuation normalization, and exposes the
// single-argument Translator the reassembly pipeline consumes. A Gateway never
// fails a run: when every attempt fails it logs the failure and yields an empty
// translation. Cached layers the SQLite memo from internal/cache on top of any
// Translator.
package translation
