package predictor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/features"
)

// Layer is one fully connected layer. Weights are indexed [input][output].
type Layer struct {
	Weights    [][]float64 `yaml:"weights"`
	Bias       []float64   `yaml:"bias"`
	Activation string      `yaml:"activation"`
}

// ScalerParams are the standardization statistics of the training set.
type ScalerParams struct {
	Mean map[string]float64 `yaml:"mean"`
	Std  map[string]float64 `yaml:"std"`
}

// Artifact is a trained regression model exported to YAML, together with
// the column order it was fit on.
type Artifact struct {
	Name    string        `yaml:"name"`
	Columns []string      `yaml:"columns,omitempty"`
	Scaler  *ScalerParams `yaml:"scaler,omitempty"`
	Layers  []Layer       `yaml:"layers,omitempty"`
}

// LoadArtifact reads and validates an artifact file.
func LoadArtifact(path string) (*Artifact, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseArtifact(b)
}

// ParseArtifact decodes an artifact. Columns default to
// features.DefaultColumns.
func ParseArtifact(b []byte) (*Artifact, error) {
	var a Artifact
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if len(a.Columns) == 0 {
		a.Columns = append([]string(nil), features.DefaultColumns...)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// FeatureScaler returns the persisted scaler, or nil if the model was
// trained on unscaled columns.
func (a *Artifact) FeatureScaler() features.Scaler {
	if a.Scaler == nil {
		return nil
	}
	return features.StandardScaler{Mean: a.Scaler.Mean, Std: a.Scaler.Std}
}

func (a *Artifact) validate() error {
	seen := make(map[string]bool, len(a.Columns))
	for _, c := range a.Columns {
		if seen[c] {
			return fmt.Errorf("model artifact: duplicate column %q", c)
		}
		seen[c] = true
	}

	width := len(a.Columns)
	for i, l := range a.Layers {
		if len(l.Weights) != width {
			return fmt.Errorf("model artifact: layer %d expects %d inputs, previous layer gives %d", i, len(l.Weights), width)
		}
		if width == 0 {
			return fmt.Errorf("model artifact: layer %d is empty", i)
		}
		out := len(l.Weights[0])
		for j, row := range l.Weights {
			if len(row) != out {
				return fmt.Errorf("model artifact: layer %d row %d has %d outputs, want %d", i, j, len(row), out)
			}
		}
		if len(l.Bias) != out {
			return fmt.Errorf("model artifact: layer %d bias has %d entries, want %d", i, len(l.Bias), out)
		}
		if _, ok := activations[l.Activation]; !ok {
			return fmt.Errorf("model artifact: layer %d unknown activation %q", i, l.Activation)
		}
		width = out
	}
	if len(a.Layers) > 0 && width < 1 {
		return fmt.Errorf("model artifact: output layer has no units")
	}
	return nil
}
