package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/RyanBlaney/latency-benchmark-common/output"

	"github.com/RyanBlaney/harmonic-analysis/configs"
	"github.com/RyanBlaney/harmonic-analysis/internal/pipeline"
	"github.com/RyanBlaney/harmonic-analysis/pkg/report"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	ProfileFile  string // Run profile overriding configuration (optional)
	OutputFile   string
	OutputFormat string
	ProjectRoot  string
	Frequencies  []float64
	Seed         uint64
	Verbose      bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
	Stdout io.Writer
}

// PipelineApp handles the pipeline application lifecycle
type PipelineApp struct {
	ctx    *Context
	config *configs.Config
	logger logging.Logger
}

// NewPipelineApp creates a new pipeline application
func NewPipelineApp(ctx *Context) (*PipelineApp, error) {
	// Set up logging
	logger := setupLogging(ctx)
	ctx.Logger = logger

	// Load configuration
	config, err := loadAndMergeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	ctx.Config = config

	if ctx.Stdout == nil {
		ctx.Stdout = os.Stdout
	}

	logger.Debug("Pipeline application initialized", logging.Fields{
		"profile_file":  ctx.ProfileFile,
		"output_format": ctx.OutputFormat,
		"dataset_path":  config.DatasetPath(),
	})

	return &PipelineApp{
		ctx:    ctx,
		config: config,
		logger: logger,
	}, nil
}

// Config returns the merged configuration
func (app *PipelineApp) Config() *configs.Config {
	return app.config
}

// Logger returns the application logger
func (app *PipelineApp) Logger() logging.Logger {
	return app.logger
}

// Run executes the pipeline and writes the report
func (app *PipelineApp) Run(ctx context.Context) (*pipeline.Summary, error) {
	app.logger.Debug("Starting pipeline execution", logging.Fields{
		"frequencies": app.config.Synth.Frequencies,
	})

	if err := os.MkdirAll(filepath.Dir(app.config.DatasetPath()), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	orchestrator, err := pipeline.NewOrchestrator(app.config, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline orchestrator: %w", err)
	}

	summary, err := orchestrator.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline execution failed: %w", err)
	}

	if err := app.OutputResults(summary); err != nil {
		return nil, fmt.Errorf("failed to output results: %w", err)
	}

	return summary, nil
}

// OutputResults formats data in the configured format and writes it to the
// output file or stdout
func (app *PipelineApp) OutputResults(data any) error {
	// Create formatter
	var formatter output.Formatter
	switch app.ctx.OutputFormat {
	case "json":
		formatter = &output.JSONFormatter{}
	case "yaml":
		formatter = &output.YAMLFormatter{}
	case "csv":
		formatter = &report.CSVFormatter{}
	case "table":
		formatter = &report.TableFormatter{}
	default:
		formatter = &output.JSONFormatter{}
	}

	formattedData, err := formatter.Format(data, app.config.Output.Pretty)
	if err != nil {
		return fmt.Errorf("failed to format output data: %w", err)
	}

	// Write to file or stdout
	if app.ctx.OutputFile != "" {
		return app.writeToFile(formattedData)
	}

	_, err = app.ctx.Stdout.Write(formattedData)
	return err
}

// setupLogging configures logging based on context
func setupLogging(ctx *Context) logging.Logger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	if ctx.Verbose {
		logging.SetLevel(logging.DebugLevel)
	} else {
		logging.SetLevel(logging.InfoLevel)
	}
	return logging.NewDefaultLogger()
}

// loadAndMergeConfig loads configuration and merges profile and CLI overrides
func loadAndMergeConfig(ctx *Context) (*configs.Config, error) {
	config := ctx.Config
	if config == nil {
		var err error
		config, err = configs.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load base configuration: %w", err)
		}
	}

	if ctx.ProfileFile != "" {
		profile, err := loadRunProfileFromFile(ctx.ProfileFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load run profile: %w", err)
		}
		applyProfile(config, profile)
	}

	// CLI flags take precedence over the profile
	if len(ctx.Frequencies) > 0 {
		config.Synth.Frequencies = ctx.Frequencies
	}
	if ctx.Seed != 0 {
		config.Synth.Seed = ctx.Seed
	}
	if ctx.ProjectRoot != "" {
		config.ProjectRoot = ctx.ProjectRoot
	}
	if ctx.OutputFormat == "" {
		ctx.OutputFormat = config.OutputFormat
	}
	if !isSupportedFormat(ctx.OutputFormat) {
		return nil, fmt.Errorf("unsupported output format: %s", ctx.OutputFormat)
	}

	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func isSupportedFormat(format string) bool {
	switch format {
	case "json", "yaml", "csv", "table":
		return true
	}
	return false
}

// writeToFile writes data to the specified output file
func (app *PipelineApp) writeToFile(data []byte) error {
	// Ensure directory exists
	dir := filepath.Dir(app.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Write file
	if err := os.WriteFile(app.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	app.logger.Debug("Results written to file", logging.Fields{
		"output_file": app.ctx.OutputFile,
		"size_bytes":  len(data),
	})

	return nil
}
