package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bkrueger/resampling/adapters/functionals"
	"github.com/bkrueger/resampling/adapters/rng"
	"github.com/bkrueger/resampling/app"
	"github.com/bkrueger/resampling/internal"
	"github.com/bkrueger/resampling/internal/config"
	"github.com/bkrueger/resampling/internal/errors"
	"github.com/bkrueger/resampling/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; explicit environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLevel(cfg.Logging.Level))

	svc := app.NewEstimateService(rng.New(), functionals.Lookup, app.ServiceOptions{
		DefaultDraws:  cfg.Estimation.BootstrapDraws,
		BaseSeed:      cfg.Estimation.BaseSeed,
		MaxConcurrent: cfg.Estimation.MaxConcurrent,
	})

	rootCmd := &cobra.Command{
		Use:   "resample",
		Short: "Bias-corrected estimates and standard errors via resampling",
		Long: `Compute bias-corrected point estimates and standard errors for
statistical functionals of a sample using jackknife, bootstrap, or
block-subsampling resampling.

Measurements are taken from the arguments, or from stdin (whitespace
separated) when no arguments are given.

Example: resample jackknife 1 2 3 4 5 --functional mean`,
	}

	rootCmd.AddCommand(
		newJackknifeCmd(svc),
		newBootstrapCmd(svc),
		newSubsampleCmd(svc),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newJackknifeCmd(svc *app.EstimateService) *cobra.Command {
	var functional string

	cmd := &cobra.Command{
		Use:   "jackknife [values...]",
		Short: "Leave-one-out resampling (exact, deterministic)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := parseSample(args)
			if err != nil {
				return err
			}
			return runEstimate(cmd.Context(), svc, ports.EstimateRequest{
				Method:     "jackknife",
				Sample:     sample,
				Functional: functional,
			})
		},
	}

	cmd.Flags().StringVar(&functional, "functional", "mean",
		fmt.Sprintf("functional to estimate %v", functionals.Names()))
	return cmd
}

func newBootstrapCmd(svc *app.EstimateService) *cobra.Command {
	var functional string
	var draws int
	var seed int64

	cmd := &cobra.Command{
		Use:   "bootstrap [values...]",
		Short: "Resampling with replacement (stochastic, seeded)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := parseSample(args)
			if err != nil {
				return err
			}
			return runEstimate(cmd.Context(), svc, ports.EstimateRequest{
				Method:     "bootstrap",
				Sample:     sample,
				Functional: functional,
				Draws:      draws,
				Seed:       seed,
			})
		},
	}

	cmd.Flags().StringVar(&functional, "functional", "mean",
		fmt.Sprintf("functional to estimate %v", functionals.Names()))
	cmd.Flags().IntVar(&draws, "draws", 0, "number of bootstrap resamples (0 = configured default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible runs (0 = configured default)")
	return cmd
}

func newSubsampleCmd(svc *app.EstimateService) *cobra.Command {
	var functional string
	var block int

	cmd := &cobra.Command{
		Use:   "subsample [values...]",
		Short: "Contiguous overlapping block resampling (deterministic)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := parseSample(args)
			if err != nil {
				return err
			}
			return runEstimate(cmd.Context(), svc, ports.EstimateRequest{
				Method:     "subsampling",
				Sample:     sample,
				Functional: functional,
				BlockSize:  block,
			})
		},
	}

	cmd.Flags().StringVar(&functional, "functional", "mean",
		fmt.Sprintf("functional to estimate %v", functionals.Names()))
	cmd.Flags().IntVar(&block, "block", 1, "contiguous window length")
	return cmd
}

func runEstimate(ctx context.Context, svc ports.EstimatorPort, req ports.EstimateRequest) error {
	outcome, err := svc.Run(ctx, req)
	if err != nil {
		return errors.EstimationFailed(req.Method, err)
	}

	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseSample reads measurements from args, or from stdin when none are given.
func parseSample(args []string) ([]float64, error) {
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			args = append(args, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read sample from stdin")
		}
	}

	sample := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("not a number: %q", arg))
		}
		sample = append(sample, v)
	}
	if len(sample) == 0 {
		return nil, errors.InvalidInput("no measurements provided")
	}
	return sample, nil
}
