package ports

import (
	"context"

	"github.com/bkrueger/resampling/domain/core"
	"github.com/bkrueger/resampling/domain/estimator"
)

// EstimateRequest describes one resampling estimation, dispatched by method name.
type EstimateRequest struct {
	Method     string           `json:"method"`
	Sample     estimator.Sample `json:"sample"`
	Functional string           `json:"functional"`

	// Draws applies to bootstrap only; 0 selects the configured default.
	Draws int `json:"draws,omitempty"`
	// Seed applies to bootstrap only; 0 selects the configured base seed.
	Seed int64 `json:"seed,omitempty"`
	// BlockSize applies to subsampling only.
	BlockSize int `json:"block_size,omitempty"`

	// RunID is optional; a fresh one is generated when empty.
	RunID core.RunID `json:"run_id,omitempty"`
}

// EstimateOutcome is the audited result of a single estimation run.
type EstimateOutcome struct {
	RunID       core.RunID       `json:"run_id"`
	Method      estimator.Method `json:"method"`
	Functional  string           `json:"functional"`
	SampleSize  int              `json:"sample_size"`
	Result      estimator.Result `json:"result"`
	Seed        int64            `json:"seed,omitempty"`
	Fingerprint core.Hash        `json:"fingerprint"`
	RuntimeMs   int64            `json:"runtime_ms"`
	ComputedAt  core.Timestamp   `json:"computed_at"`
}

// EstimatorPort runs resampling estimations for the application layer.
type EstimatorPort interface {
	Run(ctx context.Context, req EstimateRequest) (*EstimateOutcome, error)
}
