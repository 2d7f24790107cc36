package config

import _ "embed"

// Embedded default configuration, used when no file is found on disk.
//
//go:embed defaults/ledarcade.yaml
var defaultYAML []byte
