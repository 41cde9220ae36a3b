// Package openrouter translates subtitle text through the OpenRouter chat
// completion API.
//
// Each Translate call makes exactly one HTTP request. Retries belong to the
// translation gateway, which wraps every backend. Models occasionally wrap
// their answer in a code fence; the fence is stripped before the text is
// returned.
package openrouter
