package config

// DefaultFileName is the configuration file looked up in the project
// directory when --config is not given.
const DefaultFileName = "npm-dependency-switcher.config.json"

// File represents the switch configuration document.
type File struct {
	PackageManager string    `yaml:"packageManager,omitempty"`
	Packages       []Package `yaml:"packages"`
}

// Package is a single switchable dependency.
type Package struct {
	Name      string `yaml:"name,omitempty"`
	LocalPath string `yaml:"localPath,omitempty"`
}

// HasLocalPath reports whether the entry can be linked in dev mode.
func (p Package) HasLocalPath() bool {
	return p.LocalPath != ""
}

// EffectivePackageManager returns the configured package manager,
// defaulting to "npm".
func (f *File) EffectivePackageManager() string {
	if f.PackageManager != "" {
		return f.PackageManager
	}
	return "npm"
}
