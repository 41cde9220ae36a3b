package openrouter

import "fmt"

const translationPromptTemplate = `You translate subtitles from %s to %s.
The user message is one sentence group taken from consecutive subtitle cues.
Rules:
- Reply with the translation only, no notes or quotes.
- Keep every line break: the reply must have exactly as many lines as the input when possible.
- Keep speaker dashes, italics tags, and punctuation style.`

func systemPrompt(source, target string) string {
	return fmt.Sprintf(translationPromptTemplate, source, target)
}
