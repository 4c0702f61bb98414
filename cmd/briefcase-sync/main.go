package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-briefcase-sync/internal/adapter"
	"github.com/MKhiriev/go-briefcase-sync/internal/config"
	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/internal/service"
	"github.com/MKhiriev/go-briefcase-sync/internal/store"
	"github.com/MKhiriev/go-briefcase-sync/internal/utils"
	"github.com/MKhiriev/go-briefcase-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("briefcase-sync")
	cfg, err := config.GetSyncConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	briefcase, err := loadBriefcaseConfig(cfg.Sync)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading briefcase config")
	}

	remote := adapter.NewHTTPRemoteAdapter(cfg.Remote, log)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local cache")
	}

	gate := service.NewSyncGate()
	target, err := service.NewBriefcaseTarget(briefcase, remote, storages.Records, gate, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create briefcase target")
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx := log.WithContext(signalCtx)

	if cfg.Sync.CleanGhosts {
		// Cleanup scopes its local-id query by run id only when a stable one
		// is configured; a generated id matches no cached record and would
		// make every record invisible to the scan.
		report, err := target.CleanGhosts(ctx, cfg.Sync.RunID)
		for recordType, count := range report.PerType {
			log.Info().Str("record_type", recordType).Int("ghosts", count).Msg("reconciled")
		}
		if err != nil {
			log.Fatal().Err(err).Int("ghosts_total", report.Total).Msg("ghost cleanup failed")
		}
		log.Info().Int("ghosts_total", report.Total).Msg("ghost cleanup complete")
		return
	}

	runID := cfg.Sync.RunID
	if runID == "" {
		runID = utils.NewRunID()
	}

	if cfg.Sync.Interval > 0 {
		runPeriodic(ctx, target, runID, cfg, log)
		return
	}

	runOnce(ctx, target, runID, log)
}

func runOnce(ctx context.Context, target service.SyncDownTarget, runID string, log *logger.Logger) {
	result, state, err := target.StartRun(ctx, runID, 0)
	saved, dropped := result.Saved, result.Dropped
	for err == nil && !state.Exhausted() {
		var next models.RunResult
		next, state, err = target.ContinueRun(ctx, runID, state)
		saved += next.Saved
		dropped += next.Dropped
	}
	if err != nil {
		log.Fatal().Err(err).Msg("sync run failed")
	}

	log.Info().
		Int("saved", saved).
		Int("dropped", dropped).
		Int("total_estimate", result.TotalSize).
		Msg("sync run complete")
}

func runPeriodic(ctx context.Context, target service.SyncDownTarget, runID string, cfg *config.SyncConfig, log *logger.Logger) {
	job := service.NewSyncJob(target, log)
	job.Start(ctx, runID, cfg.Sync.Interval)
	defer job.Stop()

	// Run until interrupted.
	<-ctx.Done()
}

func loadBriefcaseConfig(cfg config.SyncTarget) (models.BriefcaseConfig, error) {
	data, err := os.ReadFile(cfg.BriefcasePath)
	if err != nil {
		return models.BriefcaseConfig{}, fmt.Errorf("read briefcase config: %w", err)
	}

	briefcase, err := models.ParseBriefcaseConfig(data)
	if err != nil {
		return models.BriefcaseConfig{}, err
	}

	if cfg.SliceSize > 0 {
		briefcase.SliceSize = cfg.SliceSize
	}

	return briefcase, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
