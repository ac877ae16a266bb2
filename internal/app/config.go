package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/harmonic-analysis/configs"
)

// RunProfile holds per-run overrides loaded from a YAML or JSON file
type RunProfile struct {
	Name          string    `json:"name" yaml:"name"`
	Description   string    `json:"description" yaml:"description"`
	Frequencies   []float64 `json:"frequencies" yaml:"frequencies"`
	Seed          *uint64   `json:"seed" yaml:"seed"`
	Samples       int       `json:"samples" yaml:"samples"`
	ProjectRoot   string    `json:"project_root" yaml:"project_root"`
	OutputDir     string    `json:"output_dir" yaml:"output_dir"`
	DataFile      string    `json:"data_file" yaml:"data_file"`
	TopComponents int       `json:"top_components" yaml:"top_components"`
	AreaRadius    *float64  `json:"area_radius" yaml:"area_radius"`
}

// loadRunProfileFromFile loads a run profile from a file
func loadRunProfileFromFile(filePath string) (*RunProfile, error) {
	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("run profile does not exist: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open run profile: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read run profile: %w", err)
	}

	// Determine file format
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		return parseRunProfileYAML(data)
	case ".json":
		return parseRunProfileJSON(data)
	default:
		// Try YAML first, then JSON
		if profile, err := parseRunProfileYAML(data); err == nil {
			return profile, nil
		}
		return parseRunProfileJSON(data)
	}
}

func parseRunProfileYAML(data []byte) (*RunProfile, error) {
	var profile RunProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML run profile: %w", err)
	}
	return &profile, nil
}

func parseRunProfileJSON(data []byte) (*RunProfile, error) {
	var profile RunProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse JSON run profile: %w", err)
	}
	return &profile, nil
}

// applyProfile copies every field set in profile over cfg
func applyProfile(cfg *configs.Config, profile *RunProfile) {
	if profile == nil {
		return
	}
	if len(profile.Frequencies) > 0 {
		cfg.Synth.Frequencies = profile.Frequencies
	}
	if profile.Seed != nil {
		cfg.Synth.Seed = *profile.Seed
	}
	if profile.Samples > 0 {
		cfg.Synth.Samples = profile.Samples
	}
	if profile.ProjectRoot != "" {
		cfg.ProjectRoot = profile.ProjectRoot
	}
	if profile.OutputDir != "" {
		cfg.Synth.OutputDir = profile.OutputDir
	}
	if profile.DataFile != "" {
		cfg.Synth.DataFile = profile.DataFile
	}
	if profile.TopComponents > 0 {
		cfg.Analysis.TopComponents = profile.TopComponents
	}
	if profile.AreaRadius != nil {
		cfg.Utility.AreaRadius = *profile.AreaRadius
	}
}
