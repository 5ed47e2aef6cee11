package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zoidsweep/executor"
	"github.com/katalvlaran/zoidsweep/gridstore"
	"github.com/katalvlaran/zoidsweep/internal/griddraw"
	"github.com/katalvlaran/zoidsweep/kernel"
	"github.com/katalvlaran/zoidsweep/kernels"
	"github.com/katalvlaran/zoidsweep/reference"
	"github.com/katalvlaran/zoidsweep/stopwatch"
)

func runDemo(c *cobra.Command, args []string) error {
	mode := "all"
	if len(args) == 1 {
		mode = args[0]
	}

	if err := loadConfigOverrides(); err != nil {
		return err
	}

	dims, err := parseDims(flagDims)
	if err != nil {
		return err
	}

	k, err := buildKernel(flagKernel, len(dims))
	if err != nil {
		return err
	}

	cfg := executor.DefaultConfig()
	cfg.Cut = flagCut
	cfg.FunCutoff = flagFunCutoff
	switch parseMode(flagMode) {
	case "sequential":
		cfg.Mode = executor.ModeSequential
	case "workstealing":
		cfg.Mode = executor.ModeWorkStealing
	default:
		cfg.Mode = executor.ModeGoroutine
	}

	logger.Info("zoidsweep run starting",
		zap.String("run_id", runID),
		zap.String("mode", mode),
		zap.Ints("dims", dims),
		zap.Int("steps", flagSteps),
		zap.String("kernel", flagKernel),
		zap.Int("cut", cfg.Cut),
		zap.Int("fun_cutoff", cfg.FunCutoff),
		zap.String("runtime", cfg.Mode.String()),
	)

	n := 1
	for _, d := range dims {
		n *= d
	}

	if mode == "rec" || mode == "all" {
		sw := stopwatch.New()
		data, err := gridstore.New[float64](dims, seedData(flagKernel, dims, n), 2)
		if err != nil {
			return fmt.Errorf("cmd: building grid: %w", err)
		}
		sw.Lap("build")
		if err := executor.Run(data, k, flagSteps, cfg); err != nil {
			return fmt.Errorf("cmd: recursive run: %w", err)
		}
		total := sw.Stop()
		logger.Info("recursive executor finished", zap.String("run_id", runID), zap.Duration("elapsed", total))
		if flagOut != "" && len(dims) == 2 {
			if err := dumpGrid(data, flagSteps, dims, flagOut+".rec"); err != nil {
				return err
			}
		}
	}

	if mode == "it" || mode == "all" {
		sw := stopwatch.New()
		data, err := gridstore.New[float64](dims, seedData(flagKernel, dims, n), 2)
		if err != nil {
			return fmt.Errorf("cmd: building grid: %w", err)
		}
		sw.Lap("build")
		reference.Run(data, k, flagSteps)
		total := sw.Stop()
		logger.Info("iterative reference finished", zap.String("run_id", runID), zap.Duration("elapsed", total))
		if flagOut != "" && len(dims) == 2 {
			if err := dumpGrid(data, flagSteps, dims, flagOut+".it"); err != nil {
				return err
			}
		}
	}

	return nil
}

func buildKernel(name string, d int) (kernel.Kernel, error) {
	switch name {
	case "copy":
		return kernels.NewCopy(d), nil
	case "blur3":
		if d != 2 {
			return nil, fmt.Errorf("cmd: blur3 requires 2 dimensions, got %d", d)
		}

		return kernels.Blur3{}, nil
	case "blur5":
		if d != 2 {
			return nil, fmt.Errorf("cmd: blur5 requires 2 dimensions, got %d", d)
		}

		return kernels.Blur5{}, nil
	case "life":
		if d != 2 {
			return nil, fmt.Errorf("cmd: life requires 2 dimensions, got %d", d)
		}

		return kernels.Life{}, nil
	default:
		return nil, fmt.Errorf("cmd: unknown kernel %q", name)
	}
}

func seedData(kernelName string, dims []int, n int) []float64 {
	data := make([]float64, n)
	switch kernelName {
	case "life":
		// nothing pre-seeded; leave a dead grid unless caller wires a
		// pattern in externally (demo default is a quiet field).
	default:
		rng := rand.New(rand.NewSource(1))
		for i := range data {
			data[i] = rng.Float64() * 255
		}
	}

	return data
}

func dumpGrid(data *gridstore.BufferSet[float64], tSteps int, dims []int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cmd: opening %s: %w", path, err)
	}
	defer f.Close()

	copyIdx := tSteps % data.Copies()
	return griddraw.WritePGM(f, data.Pointer(copyIdx), dims[0], dims[1])
}
