package theme

import "gopkg.in/yaml.v3"

// ToYAML serializes a theme to YAML, for a caller-side config layer to
// persist a chosen theme's overrides; Lumen itself never reads a theme
// back from disk.
func (t *Theme) ToYAML() ([]byte, error) {
	return yaml.Marshal(t)
}

// FromYAML parses a YAML-encoded theme, the inverse of ToYAML.
func FromYAML(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	return &t, nil
}
