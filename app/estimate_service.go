package app

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/bkrueger/resampling/domain/core"
	"github.com/bkrueger/resampling/domain/estimator"
	"github.com/bkrueger/resampling/internal"
	"github.com/bkrueger/resampling/ports"

	"golang.org/x/sync/semaphore"
)

// FunctionalResolver maps a functional name to its implementation. Injected
// so the service stays decoupled from any particular functional registry.
type FunctionalResolver func(name string) (estimator.Functional, error)

// EstimateService dispatches estimation requests to the resampling
// estimators by method name and wraps every run in an auditable outcome
// (run ID, input fingerprint, timing).
type EstimateService struct {
	rngPort       ports.RNGPort
	resolve       FunctionalResolver
	defaultDraws  int
	baseSeed      int64
	maxConcurrent int64
	logger        *internal.Logger
}

// ServiceOptions configures estimation defaults, normally from internal/config.
type ServiceOptions struct {
	DefaultDraws  int   // bootstrap draws when a request does not set them
	BaseSeed      int64 // seed when a request does not set one
	MaxConcurrent int   // batch concurrency limit
}

// NewEstimateService creates an estimate service
func NewEstimateService(rngPort ports.RNGPort, resolve FunctionalResolver, opts ServiceOptions) *EstimateService {
	if opts.DefaultDraws <= 0 {
		opts.DefaultDraws = estimator.DefaultBootstrapDraws
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 4
	}
	return &EstimateService{
		rngPort:       rngPort,
		resolve:       resolve,
		defaultDraws:  opts.DefaultDraws,
		baseSeed:      opts.BaseSeed,
		maxConcurrent: int64(opts.MaxConcurrent),
		logger:        internal.DefaultLogger,
	}
}

// Run executes a single estimation request
func (s *EstimateService) Run(ctx context.Context, req ports.EstimateRequest) (*ports.EstimateOutcome, error) {
	start := time.Now()

	method, err := estimator.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	fn, err := s.resolve(req.Functional)
	if err != nil {
		return nil, core.NewInvalidParameterError("functional", err.Error())
	}

	runID := req.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}

	var (
		result estimator.Result
		seed   int64
		draws  int
	)

	switch method {
	case estimator.MethodJackknife:
		result, err = estimator.Jackknife(req.Sample, fn)

	case estimator.MethodBootstrap:
		draws = req.Draws
		if draws == 0 {
			draws = s.defaultDraws
		}
		seed = req.Seed
		if seed == 0 {
			seed = s.baseSeed
		}
		// Stream name depends only on the request inputs, never on the run
		// ID, so identical requests reproduce identical draws.
		var stream estimator.UniformSource
		stream, err = s.rngPort.SeededStream(ctx, "bootstrap/"+req.Functional, seed)
		if err != nil {
			return nil, core.NewInvalidParameterError("seed", err.Error())
		}
		result, err = estimator.Bootstrap(req.Sample, fn, estimator.BootstrapOptions{Draws: draws, Source: stream})

	case estimator.MethodSubsampling:
		result, err = estimator.Subsample(req.Sample, fn, req.BlockSize)
	}
	if err != nil {
		return nil, err
	}

	outcome := &ports.EstimateOutcome{
		RunID:       runID,
		Method:      method,
		Functional:  req.Functional,
		SampleSize:  len(req.Sample),
		Result:      result,
		Seed:        seed,
		Fingerprint: fingerprint(method, req, draws, seed),
		RuntimeMs:   time.Since(start).Milliseconds(),
		ComputedAt:  core.Now(),
	}

	s.logger.Debug("estimate run %s: method=%s functional=%s n=%d resamples=%d runtime=%dms",
		runID, method, req.Functional, outcome.SampleSize, result.Resamples, outcome.RuntimeMs)

	return outcome, nil
}

// BatchItem pairs one batch request with its outcome or failure.
type BatchItem struct {
	Request ports.EstimateRequest  `json:"request"`
	Outcome *ports.EstimateOutcome `json:"outcome,omitempty"`
	Err     error                  `json:"-"`
}

// RunBatch executes independent estimation requests concurrently under a
// weighted semaphore. Estimators are pure, so requests need no coordination
// beyond the concurrency cap; each item succeeds or fails on its own.
func (s *EstimateService) RunBatch(ctx context.Context, reqs []ports.EstimateRequest) ([]BatchItem, error) {
	sem := semaphore.NewWeighted(s.maxConcurrent)
	items := make([]BatchItem, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, req ports.EstimateRequest) {
			defer wg.Done()
			defer sem.Release(1)
			outcome, err := s.Run(ctx, req)
			items[i] = BatchItem{Request: req, Outcome: outcome, Err: err}
		}(i, req)
	}
	wg.Wait()

	return items, nil
}

// fingerprint hashes everything that determines a run's output
func fingerprint(method estimator.Method, req ports.EstimateRequest, draws int, seed int64) core.Hash {
	parts := make([]string, 0, len(req.Sample)+5)
	parts = append(parts,
		string(method),
		req.Functional,
		strconv.Itoa(draws),
		strconv.FormatInt(seed, 10),
		strconv.Itoa(req.BlockSize),
	)
	for _, v := range req.Sample {
		parts = append(parts, strconv.FormatFloat(v, 'x', -1, 64))
	}
	return core.Fingerprint(parts...)
}
