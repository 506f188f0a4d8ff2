package components

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/scenegraph/internal/core/models"
)

// decode applies a serialized data map onto out. Keys missing from data leave
// the matching fields untouched, so it works for both creation and partial
// reconfiguration. Numbers coming from JSON (float64) or YAML (int) both land
// in float fields.
func decode(data map[string]any, out any) error {
	if len(data) == 0 {
		return nil
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidComponentData, err)
	}
	if err = yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidComponentData, err)
	}
	return nil
}

func vec3(v [3]float64) []float64 { return []float64{v[0], v[1], v[2]} }

func vec4(v [4]float64) []float64 { return []float64{v[0], v[1], v[2], v[3]} }
