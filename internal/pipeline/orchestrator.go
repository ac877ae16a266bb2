package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/RyanBlaney/latency-benchmark-common/logging"

	"github.com/RyanBlaney/harmonic-analysis/configs"
	"github.com/RyanBlaney/harmonic-analysis/internal/fit"
	"github.com/RyanBlaney/harmonic-analysis/pkg/dataset"
	"github.com/RyanBlaney/harmonic-analysis/pkg/geometry"
	"github.com/RyanBlaney/harmonic-analysis/pkg/harmonic"
	"github.com/RyanBlaney/harmonic-analysis/pkg/spectral"
	"github.com/RyanBlaney/harmonic-analysis/pkg/synth"
)

// Orchestrator runs synthesis, analysis and visualization in order
type Orchestrator struct {
	config      *configs.Config
	synthesizer *synth.Synthesizer
	analyzer    *spectral.Analyzer
	visualizer  *harmonic.Visualizer
	metrics     *fit.MetricsCalculator
	logger      logging.Logger
}

// NewOrchestrator creates a new pipeline orchestrator
func NewOrchestrator(cfg *configs.Config, logger logging.Logger) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := configs.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	synthOpts := []synth.Option{
		synth.WithSamples(cfg.Synth.Samples),
		synth.WithLogger(logger.WithFields(logging.Fields{"component": "synthesizer"})),
	}
	if cfg.Synth.Seed != 0 {
		synthOpts = append(synthOpts, synth.WithSeed(cfg.Synth.Seed))
	}

	visualizer := harmonic.NewVisualizer(
		harmonic.WithSuffix(cfg.Plot.Suffix),
		harmonic.WithSize(cfg.Plot.Width, cfg.Plot.Height),
		harmonic.WithLabels(cfg.Plot.Title, cfg.Plot.XLabel, cfg.Plot.YLabel),
		harmonic.WithLogger(logger.WithFields(logging.Fields{"component": "harmonic_visualizer"})),
	)

	analyzer := spectral.NewAnalyzer(
		spectral.WithTopComponents(cfg.Analysis.TopComponents),
		spectral.WithLogger(logger.WithFields(logging.Fields{"component": "spectral_analyzer"})),
	)

	return &Orchestrator{
		config:      cfg,
		synthesizer: synth.NewSynthesizer(synthOpts...),
		analyzer:    analyzer,
		visualizer:  visualizer,
		metrics:     fit.NewMetricsCalculator(logger),
		logger:      logger,
	}, nil
}

// Run executes the complete pipeline. Cancellation is checked between
// stages; a stage in progress always runs to completion.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	startTime := time.Now()
	path := o.config.DatasetPath()

	summary := &Summary{
		InputFrequencies: o.config.Synth.Frequencies,
		DatasetPath:      path,
		Precision:        o.config.Output.Precision,
		StartTime:        startTime,
	}

	o.logger.Debug("Starting harmonic analysis pipeline", logging.Fields{
		"dataset_path": path,
		"frequencies":  o.config.Synth.Frequencies,
		"seeded":       o.config.Synth.Seed != 0,
	})

	err := o.stage(ctx, summary, StageSynthesize, func() error {
		return o.synthesizer.Synthesize(o.config.Synth.Frequencies, path)
	})
	if err != nil {
		return nil, err
	}

	var result *spectral.Result
	err = o.stage(ctx, summary, StageAnalyze, func() error {
		var err error
		result, err = o.analyzer.Analyze(path)
		return err
	})
	if err != nil {
		return nil, err
	}
	summary.Components = result.Components
	summary.SampleCount = result.SampleCount
	summary.SampleStep = result.SampleStep
	summary.Nyquist = result.Nyquist

	var rec *harmonic.Reconstruction
	err = o.stage(ctx, summary, StageVisualize, func() error {
		var err error
		rec, err = o.visualizer.VisualizeFile(path, result.Components)
		return err
	})
	if err != nil {
		return nil, err
	}
	summary.PlotPath = rec.PlotPath

	err = o.stage(ctx, summary, StageScore, func() error {
		ds, err := dataset.Read(path)
		if err != nil {
			return err
		}
		summary.Fit, err = o.metrics.Calculate(ds.Y, rec.Values)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = o.stage(ctx, summary, StageUtility, func() error {
		var err error
		summary.CircleArea, err = geometry.AreaCirc(o.config.Utility.AreaRadius)
		return err
	})
	if err != nil {
		return nil, err
	}

	summary.EndTime = time.Now()
	summary.TotalDuration = summary.EndTime.Sub(startTime)

	o.logger.Info("Harmonic analysis pipeline completed", logging.Fields{
		"total_duration_s": summary.TotalDuration.Seconds(),
		"plot_path":        summary.PlotPath,
		"components":       len(summary.Components),
	})

	return summary, nil
}

// stage runs fn unless ctx is already done and appends its timing
func (o *Orchestrator) stage(ctx context.Context, summary *Summary, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("pipeline cancelled before %s: %w", name, err)
	}

	start := time.Now()
	if err := fn(); err != nil {
		o.logger.Error(err, "Pipeline stage failed", logging.Fields{
			"stage": name,
		})
		return fmt.Errorf("%s stage failed: %w", name, err)
	}

	timing := StageTiming{Stage: name, Duration: time.Since(start)}
	summary.Stages = append(summary.Stages, timing)

	o.logger.Debug("Pipeline stage completed", logging.Fields{
		"stage":      name,
		"duration_s": timing.Duration.Seconds(),
	})
	return nil
}
