package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/astrogrind/crunch"
	"github.com/astrogrind/crunch/internal/format"
	"github.com/astrogrind/crunch/pkg/prep"
	"github.com/spf13/cobra"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Command line flags
var (
	// Simulate command flags
	sampleSize int
	mean       float64
	sigma      float64

	// Bootstrap command flags
	inputFile string

	// Shared experiment flags
	iterations int
	confidence float64
	seed       int64
	bins       int
	noProgress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "crunch",
		Short:   "Bootstrap statistics for observational data",
		Version: "1.0.0",
	}

	// Add commands
	rootCmd.AddCommand(buildSimulateCmd())
	rootCmd.AddCommand(buildBootstrapCmd())

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildSimulateCmd() *cobra.Command {
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Bootstrap a synthetic normal sample",
		RunE:  runSimulate,
	}

	// Add flags
	simulateCmd.Flags().IntVarP(&sampleSize, "size", "n", 500, "Sample size")
	simulateCmd.Flags().Float64VarP(&mean, "mean", "m", 0, "Mean of the normal distribution")
	simulateCmd.Flags().Float64VarP(&sigma, "sigma", "s", 1, "Standard deviation of the normal distribution")
	addExperimentFlags(simulateCmd)

	return simulateCmd
}

func buildBootstrapCmd() *cobra.Command {
	bootstrapCmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Bootstrap confidence intervals for a column of numbers",
		RunE:  runBootstrap,
	}

	// Add flags
	bootstrapCmd.Flags().StringVarP(&inputFile, "input", "f", "", "Input file with one value per line")
	addExperimentFlags(bootstrapCmd)

	// Required flags
	bootstrapCmd.MarkFlagRequired("input")

	return bootstrapCmd
}

func addExperimentFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 10000, "Number of bootstrap samples")
	cmd.Flags().Float64VarP(&confidence, "confidence", "c", 0.95, "Confidence level")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().IntVarP(&bins, "bins", "b", 15, "Histogram bin count")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	values := drawNormal(sampleSize, mean, sigma, seed)

	crunch.DefaultLog.WithFields(map[string]any{
		"size":  sampleSize,
		"mean":  mean,
		"sigma": sigma,
	}).Info("simulated sample ready")

	return runExperiment(cmd, values)
}

// drawNormal samples n values from Normal(mu, sigma). A zero seed is
// replaced by the current time.
func drawNormal(n int, mu, sigma float64, seed int64) []float64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: exprand.NewSource(uint64(seed))}

	values := make([]float64, n)
	for i := range values {
		values[i] = dist.Rand()
	}
	return values
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	values, err := readValues(inputFile)
	if err != nil {
		return err
	}

	clean := prep.DropNaN(values)
	if dropped := len(values) - len(clean); dropped > 0 {
		crunch.DefaultLog.Warnf("dropped %d NaN values from %s", dropped, inputFile)
	}

	return runExperiment(cmd, clean)
}

func runExperiment(cmd *cobra.Command, values []float64) error {
	options := []crunch.Option{
		crunch.WithIterations(iterations),
		crunch.WithConfidence(confidence),
		crunch.WithHistogramBins(bins),
		crunch.WithProgress(!noProgress),
	}

	if seed != 0 {
		options = append(options, crunch.WithSeed(seed))
	}

	exp, err := crunch.New(values, options...)
	if err != nil {
		return err
	}

	report, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	report.Summary(os.Stdout)
	return nil
}

// readValues loads one float per line, skipping blanks and # comments
func readValues(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		value, err := format.ParseFloat(line)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", line, err)
		}
		values = append(values, value)
	}

	return values, scanner.Err()
}
