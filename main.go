package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"fittrack/internal/config"
	"fittrack/internal/report"
	"fittrack/internal/sensor"
	"fittrack/internal/service"
	"fittrack/internal/tui"
)

// defaultPackages is the built-in sensor batch used when no input
// file is configured.
var defaultPackages = []sensor.Package{
	{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Type: "RUN", Data: []float64{15000, 1, 75}},
	{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inputPath := flag.String("input", "", "path to a JSON file of sensor packages")
	useTUI := flag.Bool("tui", false, "browse the results interactively")
	flag.Parse()

	loadEnvFile()

	// Load configuration; running without a config file is fine
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	packages, err := loadPackages(*inputPath, cfg)
	if err != nil {
		return err
	}

	results := service.Process(packages)

	if *useTUI {
		app := tui.NewApp(results, cfg.Display)
		p := tea.NewProgram(app, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	return printResults(os.Stdout, results, cfg.Report)
}

// loadEnvFile loads an optional .env file from the working directory.
// A missing file is fine; any other failure gets a notice.
func loadEnvFile() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}
}

// loadPackages resolves the batch source: the --input flag wins, then
// FITTRACK_INPUT, then input.path from the config file, and finally
// the built-in batch.
func loadPackages(inputPath string, cfg *config.Config) ([]sensor.Package, error) {
	if inputPath == "" {
		inputPath = os.Getenv("FITTRACK_INPUT")
	}
	if inputPath == "" {
		inputPath = cfg.Input.Path
	}
	if inputPath == "" {
		return defaultPackages, nil
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening packages file: %w", err)
	}
	defer f.Close()

	packages, err := sensor.DecodePackages(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}
	return packages, nil
}

// printResults writes one report line per decoded package to w, in
// input order. Failed packages are logged and counted; they fail the
// run without stopping it unless report.stop_on_error is set.
func printResults(w io.Writer, results []service.Result, rep config.ReportConfig) error {
	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			log.Printf("skipping package %d (%s): %v", i+1, res.Package.Type, res.Err)
			if rep.StopOnError {
				return fmt.Errorf("package %d (%s): %w", i+1, res.Package.Type, res.Err)
			}
			continue
		}
		fmt.Fprintln(w, report.Line(res.Summary))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d packages failed", failed, len(results))
	}
	return nil
}
