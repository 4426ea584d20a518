package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default block game configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Gameplay: BlocksGameplay{
			StartLevel: 1,
		},
		Timing: BlocksTiming{
			MinDropIntervalMs: 0,
		},
		Render: BlocksRender{
			Block:      "[]",
			ShowBorder: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
