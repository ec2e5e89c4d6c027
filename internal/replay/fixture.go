package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/persona-matrix/internal/model"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string              `json:"description"`
	Config          *model.Config       `json:"config,omitempty"`
	Events          []model.EventUpdate `json:"events"`
	ExpectedResults []ExpectedResult    `json:"expected_results,omitempty"`
}

// ExpectedResult captures the expectations for one event, matched by
// position. Range bounds use pointers so absent fields mean unchecked.
type ExpectedResult struct {
	MinValence    *float64 `json:"min_valence,omitempty"`
	MaxValence    *float64 `json:"max_valence,omitempty"`
	MinArousal    *float64 `json:"min_arousal,omitempty"`
	MaxArousal    *float64 `json:"max_arousal,omitempty"`
	Tags          []string `json:"tags,omitempty"` // tags the state must carry
	DriftDetected *bool    `json:"drift_detected,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// EffectiveConfig returns the fixture's config override or the defaults.
func (f *Fixture) EffectiveConfig() model.Config {
	if f.Config != nil {
		return *f.Config
	}
	return model.DefaultConfig()
}

// #endregion fixture-loader
