package reassembly

import (
	"context"
	"log/slog"
	"strings"

	"translatesrt/internal/logging"
	"translatesrt/internal/progress"
	"translatesrt/internal/sentence"
	"translatesrt/internal/srt"
	"translatesrt/internal/translation"
)

// Group is one sentence run: the cue at Position owns the joined Source text
// and its translation, and the following Size-1 cues were absorbed into it.
type Group struct {
	StartIndex int
	Position   int
	Size       int
	Source     string
	Text       string
}

// Lines returns the non-empty translated lines of the group.
func (g Group) Lines() []string {
	return nonEmptyLines(g.Text)
}

// Merge joins cues into sentence groups and translates each group. The input
// slice is not modified. Cues with empty text that are not absorbed into a
// preceding sentence produce no group. Merge only fails when ctx is done;
// translator errors leave the group untranslated.
func Merge(ctx context.Context, cues []srt.Cue, translator translation.Translator, opts Options) ([]Group, error) {
	logger := opts.logger()
	reporter := opts.progress()

	total := len(cues)
	absorbed := make([]bool, total)
	groups := make([]Group, 0, total)

	report := func(pos int) {
		if total > 0 {
			reporter.Report((pos + 1) * 100 / total)
		}
	}

	for i := 0; i < total; i++ {
		if absorbed[i] || cues[i].Text == "" {
			report(i)
			continue
		}

		text := cues[i].Text
		last := i
		for !sentence.IsComplete(text) && last+1 < total {
			last++
			text += "\n" + cues[last].Text
			absorbed[last] = true
		}

		translated, err := translator.Translate(ctx, text)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return groups, ctxErr
			}
			logging.WarnWithContext(logger, "translator returned an error; group left untranslated", "translation_error",
				logging.Int(logging.FieldCueIndex, cues[i].Index),
				logging.Error(err),
				logging.String(logging.FieldImpact, "cues for this sentence will be blank"),
			)
			translated = ""
		}

		group := Group{
			StartIndex: cues[i].Index,
			Position:   i,
			Size:       last - i + 1,
			Source:     text,
			Text:       strings.TrimSpace(translated),
		}
		groups = append(groups, group)
		logger.Debug("sentence group translated",
			logging.Int(logging.FieldCueIndex, group.StartIndex),
			logging.Int("cues", group.Size),
			logging.Int("source_lines", len(srt.SplitLines(group.Source))),
			logging.Int("translated_lines", len(group.Lines())),
		)
		report(i)
	}
	return groups, nil
}

// FlatLines concatenates the non-empty translated lines of every group in
// order.
func FlatLines(groups []Group) []string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, g.Lines()...)
	}
	return lines
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range srt.SplitLines(text) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return logging.NewComponentLogger(o.Logger, "reassembly")
}

func (o Options) progress() progress.Reporter {
	if o.Progress == nil {
		return progress.Nop{}
	}
	return o.Progress
}
