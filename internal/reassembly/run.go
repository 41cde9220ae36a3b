package reassembly

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"translatesrt/internal/logging"
	"translatesrt/internal/progress"
	"translatesrt/internal/srt"
	"translatesrt/internal/translation"
)

// Policy selects how translated lines are handed back to cues.
type Policy string

const (
	// PolicyGroup keeps each sentence's lines within that sentence's cues.
	PolicyGroup Policy = "group"
	// PolicyTruncate fills cues from one cursor across the whole file.
	PolicyTruncate Policy = "truncate"
)

// ParsePolicy validates a policy name. Empty selects PolicyGroup.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyGroup:
		return PolicyGroup, nil
	case PolicyTruncate:
		return PolicyTruncate, nil
	default:
		return "", fmt.Errorf("unknown mismatch policy %q", value)
	}
}

// Options configures Merge and Run.
type Options struct {
	Policy   Policy
	Progress progress.Reporter
	Logger   *slog.Logger
}

// Result is the outcome of a full run.
type Result struct {
	Cues   []srt.Cue
	Groups []Group
	Counts LineCounts
	Lines  []string
	Stats  Stats
}

// Run snapshots line counts, merges and translates, then reallocates the
// translated lines with the configured policy. The input slice is not
// modified.
func Run(ctx context.Context, cues []srt.Cue, translator translation.Translator, opts Options) (Result, error) {
	policy := opts.Policy
	if policy == "" {
		policy = PolicyGroup
	}
	logger := opts.logger()

	counts := SnapshotLineCounts(cues)
	groups, err := Merge(ctx, cues, translator, opts)
	opts.progress().Finish()
	if err != nil {
		return Result{}, fmt.Errorf("merge cues: %w", err)
	}
	flat := FlatLines(groups)

	var out []srt.Cue
	var stats Stats
	switch policy {
	case PolicyGroup:
		out, stats = ReallocateGroups(cues, counts, groups)
	case PolicyTruncate:
		out, stats = Reallocate(cues, counts, flat)
		stats.MismatchedGroups = mismatchedGroups(cues, counts, groups)
	default:
		return Result{}, fmt.Errorf("unknown mismatch policy %q", policy)
	}

	if stats.Mismatch() {
		logging.WarnWithContext(logger, "translated line count differs from original layout", "line_count_mismatch",
			logging.String("policy", string(policy)),
			logging.Int("expected_lines", stats.Expected),
			logging.Int("translated_lines", stats.Available),
			logging.Int("mismatched_groups", stats.MismatchedGroups),
			logging.Int("short_cues", stats.ShortCues),
			logging.String(logging.FieldErrorHint, "review the output around the affected cues"),
			logging.String(logging.FieldImpact, "some cues carry more or fewer lines than the source"),
		)
	}
	logger.Info("reassembly complete",
		logging.String(logging.FieldEventType, "reassembly_complete"),
		logging.Int("cues", len(out)),
		logging.Int("groups", len(groups)),
		logging.Int("lines", len(flat)),
	)

	return Result{
		Cues:   out,
		Groups: groups,
		Counts: counts,
		Lines:  flat,
		Stats:  stats,
	}, nil
}
