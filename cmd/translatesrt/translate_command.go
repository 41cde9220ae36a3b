package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"translatesrt/internal/cache"
	"translatesrt/internal/config"
	"translatesrt/internal/logging"
	"translatesrt/internal/progress"
	"translatesrt/internal/reassembly"
	"translatesrt/internal/report"
	"translatesrt/internal/runlock"
	"translatesrt/internal/srt"
	"translatesrt/internal/translation"
)

func runTranslate(cmd *cobra.Command, ctx *commandContext, inputFlag string, args []string) error {
	input := strings.TrimSpace(inputFlag)
	if input == "" {
		return newUsageError(errors.New("an input file is required (-i, --input)"))
	}
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return newUsageError(errors.New("an output file path is required"))
	}
	if err := srt.Validate(input); err != nil {
		return newUsageError(fmt.Errorf("argument -i/--input: %w", err))
	}

	output, err := config.ExpandPath(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newRunLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "cli")

	lock, err := runlock.Acquire(output)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.WarnWithContext(logger, "failed to release output lock", "lock_release_failed",
				logging.String("lock", lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "delete the lock file manually"),
			)
		}
	}()

	start := time.Now()
	cues, err := srt.Load(input)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	policy, err := reassembly.ParsePolicy(cfg.Translation.MismatchPolicy)
	if err != nil {
		return err
	}

	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}
	gateway := translation.NewGateway(backend, translation.Options{
		Source:      cfg.Translation.SourceLang,
		Target:      cfg.Translation.TargetLang,
		MaxAttempts: cfg.Translation.MaxAttempts,
		BackoffUnit: cfg.Backoff(),
		Logger:      logger,
	})

	var translator translation.Translator = gateway
	var cached *translation.Cached
	if cfg.Cache.Enabled {
		store := openCache(cmd, cfg, logger)
		if store != nil {
			defer store.Close()
			cached = translation.NewCached(gateway, store, backend.Name(), gateway.Source(), gateway.Target(), logger)
			translator = cached
		}
	}

	logger.Info("translation started",
		logging.String(logging.FieldEventType, "run_started"),
		logging.String("input", input),
		logging.String("output", output),
		logging.String("backend", backend.Name()),
		logging.String("source_lang", gateway.Source()),
		logging.String("target_lang", gateway.Target()),
		logging.Int("cues", len(cues)),
	)

	result, err := reassembly.Run(cmd.Context(), cues, translator, reassembly.Options{
		Policy:   policy,
		Progress: progress.New(cmd.ErrOrStderr(), logger),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if err := srt.Save(result.Cues, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	elapsed := time.Since(start)
	logger.Info("translation finished",
		logging.String(logging.FieldEventType, "run_finished"),
		logging.String("output", output),
		logging.Duration("elapsed", elapsed),
		logging.Int("failed_translations", gateway.Failures()),
	)

	summary := report.Summary{
		Input:              input,
		Output:             output,
		Backend:            backend.Name(),
		Source:             gateway.Source(),
		Target:             gateway.Target(),
		Policy:             string(policy),
		Cues:               len(result.Cues),
		Groups:             len(result.Groups),
		ExpectedLines:      result.Stats.Expected,
		TranslatedLines:    result.Stats.Available,
		MismatchedGroups:   result.Stats.MismatchedGroups,
		ShortCues:          result.Stats.ShortCues,
		FailedTranslations: gateway.Failures(),
		Elapsed:            elapsed,
	}
	if cached != nil {
		summary.CacheEnabled = true
		summary.CacheHits = cached.Hits()
		summary.CacheMisses = cached.Misses()
	}
	if err := report.Write(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// openCache opens the translation memo. Failures are logged and the run
// continues uncached.
func openCache(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) *cache.Store {
	store, err := cache.Open(cmd.Context(), cfg.Cache.Path)
	if err != nil {
		logging.WarnWithContext(logger, "translation cache unavailable", "cache_open_failed",
			logging.String("path", cfg.Cache.Path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "delete the cache file or set cache.enabled = false"),
			logging.String(logging.FieldImpact, "every sentence is sent to the backend"),
		)
		return nil
	}
	return store
}
