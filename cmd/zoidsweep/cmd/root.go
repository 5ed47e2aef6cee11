package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	flagDims      string
	flagSteps     int
	flagKernel    string
	flagCut       int
	flagFunCutoff int
	flagMode      string
	flagConfig    string
	flagOut       string
	flagVerbose   bool

	logger *zap.Logger
	runID  string
)

var rootCmd = &cobra.Command{
	Use:       "zoidsweep [rec|it|all]",
	Short:     "Run the cache-oblivious recursive stencil executor demo",
	ValidArgs: []string{"rec", "it", "all"},
	Args:      cobra.MaximumNArgs(1),
	Long: `zoidsweep builds a grid and a named kernel (copy, blur3, blur5,
life), then runs the recursive trapezoidal-decomposition executor
("rec"), the naive iterative reference ("it"), or both ("all", the
default), printing per-phase timings for comparison.`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setupLogger()
	},
	RunE: runDemo,
}

// Execute runs the root command; it is the only symbol main imports.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagDims, "dims", "64,64", "comma-separated per-dimension grid extents")
	rootCmd.Flags().IntVar(&flagSteps, "steps", 50, "number of time steps")
	rootCmd.Flags().StringVar(&flagKernel, "kernel", "blur3", "kernel: copy, blur3, blur5, life")
	rootCmd.Flags().IntVar(&flagCut, "cut", 10, "CUT: time extent recursion bottoms out at")
	rootCmd.Flags().IntVar(&flagFunCutoff, "fun-cutoff", 8, "FUN_CUTOFF: max recursion depth before forced base case")
	rootCmd.Flags().StringVar(&flagMode, "mode", "goroutine", "runtime: sequential, goroutine, workstealing")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional config file (yaml/json/toml) overriding cut/fun-cutoff/mode")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "optional output file prefix for a PGM dump of the final 2-D grid")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug-level logging")
}

func setupLogger() error {
	cfg := zap.NewProductionConfig()
	if flagVerbose {
		cfg = zap.NewDevelopmentConfig()
	}
	z, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("cmd: building logger: %w", err)
	}
	logger = z
	runID = uuid.NewString()

	return nil
}

// loadConfigOverrides reads --config (if set) via viper and applies any
// cut/fun_cutoff/mode keys over the flag defaults.
func loadConfigOverrides() error {
	if flagConfig == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(flagConfig)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("cmd: reading config %s: %w", flagConfig, err)
	}
	if v.IsSet("cut") {
		flagCut = v.GetInt("cut")
	}
	if v.IsSet("fun_cutoff") {
		flagFunCutoff = v.GetInt("fun_cutoff")
	}
	if v.IsSet("mode") {
		flagMode = v.GetString("mode")
	}

	return nil
}

func parseDims(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	dims := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("cmd: invalid --dims component %q", p)
		}
		dims = append(dims, n)
	}

	return dims, nil
}

func parseMode(s string) string {
	switch strings.ToLower(s) {
	case "sequential", "goroutine", "workstealing":
		return strings.ToLower(s)
	default:
		return "goroutine"
	}
}
