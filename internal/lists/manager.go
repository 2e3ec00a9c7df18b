package lists

import (
	"fmt"
	"path/filepath"

	"github.com/rangekit/rangefetch/internal/config"
	apperrors "github.com/rangekit/rangefetch/internal/errors"
	"github.com/rangekit/rangefetch/internal/log"
	"github.com/rangekit/rangefetch/internal/parsers"
	"github.com/rangekit/rangefetch/internal/providers"
)

// Stage is a step of the per-provider pipeline. A result carries the stage
// it ended in: StageSucceeded, or StageFailed with the stage that failed
// recorded in the error message.
type Stage string

const (
	StagePending          Stage = "pending"
	StageFetching         Stage = "fetching"
	StageParsing          Stage = "parsing"
	StageValidating       Stage = "validating"
	StageNormalizing      Stage = "normalizing"
	StageWritingCanonical Stage = "writing-canonical"
	StageChunking         Stage = "chunking"
	StageSucceeded        Stage = "succeeded"
	StageFailed           Stage = "failed"
)

// FetchOptions toggles the optional stages of the pipeline.
type FetchOptions struct {
	// DryRun suppresses every filesystem write while still running all other
	// stages and reporting the counts a live run would produce.
	DryRun bool
	// SkipChunks skips the chunking stage.
	SkipChunks bool
}

// ProviderResult is the terminal outcome for one provider.
type ProviderResult struct {
	Provider   string
	Stage      Stage
	CIDRCount  int
	ChunkCount int
	Err        *apperrors.Error
}

// Succeeded reports whether the provider completed the whole pipeline.
func (r *ProviderResult) Succeeded() bool {
	return r.Stage == StageSucceeded
}

func (r *ProviderResult) fail(err *apperrors.Error) *ProviderResult {
	r.Stage = StageFailed
	r.Err = err
	return r
}

// RunSummary aggregates the outcomes of one run across all requested providers.
type RunSummary struct {
	Attempted  int
	Succeeded  int
	TotalCIDRs int
}

// AllSucceeded reports whether every requested provider completed.
func (s RunSummary) AllSucceeded() bool {
	return s.Succeeded == s.Attempted
}

// Manager drives the fetch → parse → normalize → write → chunk pipeline.
type Manager struct {
	cfg     *config.Config
	fetcher Fetcher
}

// NewManager creates a manager with the production HTTP fetcher.
func NewManager(cfg *config.Config) *Manager {
	return NewManagerWithFetcher(cfg, NewHTTPFetcher(cfg))
}

// NewManagerWithFetcher creates a manager with a custom fetcher. Used by tests.
func NewManagerWithFetcher(cfg *config.Config, fetcher Fetcher) *Manager {
	return &Manager{cfg: cfg, fetcher: fetcher}
}

// FetchProvider runs the full pipeline for one provider and returns its
// terminal result. It never returns a partial write: a failure at any stage
// leaves the stages after it untouched.
func (m *Manager) FetchProvider(name string, opts FetchOptions) *ProviderResult {
	result := &ProviderResult{Provider: name, Stage: StagePending}

	provider, ok := providers.Get(name)
	if !ok {
		return result.fail(apperrors.NewConfigError(fmt.Sprintf("unknown provider '%s'", name), nil))
	}

	log.Infof("Fetching %s from %s...", provider.Name, provider.URL)

	result.Stage = StageFetching
	content, err := m.fetcher.Fetch(provider.URL)
	if err != nil {
		return result.fail(apperrors.NewNetworkError(fmt.Sprintf("failed to fetch %s", provider.Name), err))
	}

	result.Stage = StageParsing
	cidrs, err := parsers.Parse(provider.Parser, content)
	if err != nil {
		return result.fail(apperrors.NewDecodeError(fmt.Sprintf("failed to parse %s feed (%s)", provider.Name, provider.Parser), err))
	}

	result.Stage = StageValidating
	if len(cidrs) == 0 {
		log.Warnf("No CIDRs found for %s", provider.Name)
		return result.fail(apperrors.NewEmptyResultError(fmt.Sprintf("no CIDRs found for %s", provider.Name)))
	}

	result.Stage = StageNormalizing
	cidrs = Normalize(cidrs)
	result.CIDRCount = len(cidrs)

	result.Stage = StageWritingCanonical
	outputPath := filepath.Join(m.cfg.GetAbsProvidersDir(), provider.OutputFile)
	if opts.DryRun {
		log.Infof("Would write %d CIDRs to %s", len(cidrs), outputPath)
	} else {
		if err := writeLines(outputPath, cidrs); err != nil {
			return result.fail(apperrors.NewWriteError(fmt.Sprintf("failed to write %s", outputPath), err))
		}
		log.Infof("Wrote %d CIDRs to %s", len(cidrs), outputPath)
	}

	if !opts.SkipChunks {
		result.Stage = StageChunking
		chunks := PlanChunks(provider.Name, cidrs, m.cfg)
		if opts.DryRun {
			for _, chunk := range chunks {
				log.Infof("Would write %d CIDRs to %s", len(chunk.CIDRs), chunk.Path)
			}
		} else {
			if err := WriteChunks(chunks); err != nil {
				return result.fail(apperrors.NewWriteError(fmt.Sprintf("failed to write chunks for %s", provider.Name), err))
			}
			for _, chunk := range chunks {
				log.Infof("Wrote %d CIDRs to %s", len(chunk.CIDRs), chunk.Path)
			}
		}
		result.ChunkCount = len(chunks)
	}

	result.Stage = StageSucceeded
	return result
}

// FetchProviders processes the given providers sequentially, in order. One
// provider's failure is reported and never halts the others.
func (m *Manager) FetchProviders(names []string, opts FetchOptions) (RunSummary, []*ProviderResult) {
	var summary RunSummary
	results := make([]*ProviderResult, 0, len(names))

	for _, name := range names {
		result := m.FetchProvider(name, opts)
		results = append(results, result)

		summary.Attempted++
		if result.Succeeded() {
			summary.Succeeded++
			summary.TotalCIDRs += result.CIDRCount
		} else {
			log.Errorf("Error processing %s: %v", name, result.Err)
		}
	}

	return summary, results
}
