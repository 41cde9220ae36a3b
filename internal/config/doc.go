// Package config loads, normalizes, and validates translatesrt configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as OPENROUTER_API_KEY and
// OPENAI_API_KEY. Language codes are checked against BCP 47 so a typo fails at
// load time rather than on the first translation request.
package config
