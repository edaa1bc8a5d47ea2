// Package config loads monolens configuration with koanf, layering
// embedded TOML defaults, an optional .monolens.toml at the inspected
// workspace root, and MONOLENS_* environment variables, in that order.
package config
