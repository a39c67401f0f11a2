// Copyright Ignite Legal, 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/Ignitelegal/convertMDtoWord/pkg/types"
)

// loadStyleMap reads a style-map override file. An empty path means no
// overrides. The file must parse; a requested style map the converter
// cannot read is treated like an unreadable template.
func loadStyleMap(path string) (map[string][]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: style map %s: %v", ErrTemplateUnreadable, path, err)
	}
	var f types.StyleMapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: style map %s: %v", ErrTemplateUnreadable, path, err)
	}
	return f.Styles, nil
}
