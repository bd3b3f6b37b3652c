package config

// ProfileFile represents the structure of the halpack.yaml profile file.
type ProfileFile struct {
	Version    string          `yaml:"version"`
	Options    map[string]bool `yaml:"options"`
	PackageDir string          `yaml:"packageDir"`
}
