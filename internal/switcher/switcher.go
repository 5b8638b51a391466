package switcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cnichte/npm-dependency-switcher/internal/config"
	"github.com/cnichte/npm-dependency-switcher/internal/manifest"
)

// Mode selects how configured dependencies are resolved.
type Mode string

const (
	ModeDev  Mode = "dev"
	ModeProd Mode = "prod"
)

// ErrInvalidMode is returned by ParseMode for anything but dev or prod.
var ErrInvalidMode = errors.New("mode must be dev or prod")

// ParseMode parses a mode token case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDev:
		return ModeDev, nil
	case ModeProd:
		return ModeProd, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrInvalidMode, s)
	}
}

// Registry resolves the latest published version of a package.
type Registry interface {
	LatestVersion(name string) (string, error)
}

// LocalRef builds the specifier that points a dependency at a local path.
func LocalRef(localPath string) string {
	return "file:" + localPath
}

// PinnedRef builds the caret specifier for a published version.
func PinnedRef(version string) string {
	return "^" + version
}

// Outcome records what happened to a single configured package.
type Outcome struct {
	Name     string
	Section  string
	Added    bool
	Previous string
	Spec     string
	Version  string // resolved registry version, prod mode only
	Skipped  bool
	Reason   string
}

// Result is the outcome of one switch pass, in configuration order.
type Result struct {
	Outcomes []Outcome
	Updated  []string
	Skipped  []string
}

// Apply rewrites the manifest in memory for mode. Entries without a name
// and repeated names are ignored. Per-entry failures skip the entry and
// never abort the pass. reg may be nil in dev mode.
func Apply(m *manifest.Manifest, pkgs []config.Package, mode Mode, reg Registry) Result {
	var res Result
	seen := make(map[string]bool, len(pkgs))

	for _, p := range pkgs {
		if p.Name == "" || seen[p.Name] {
			continue
		}
		seen[p.Name] = true

		sec, created := manifest.LocateOrCreate(m, p.Name)
		prev, _ := sec.Get(p.Name)
		o := Outcome{Name: p.Name, Section: sec.Name, Added: created, Previous: prev}

		switch mode {
		case ModeDev:
			if !p.HasLocalPath() {
				o.Skipped = true
				o.Reason = "no localPath"
				break
			}
			o.Spec = LocalRef(p.LocalPath)
		default:
			v, err := latestVersion(reg, p.Name)
			if err != nil {
				o.Skipped = true
				o.Reason = err.Error()
				break
			}
			o.Version = v
			o.Spec = PinnedRef(v)
		}

		if o.Skipped {
			res.Skipped = append(res.Skipped, p.Name)
		} else {
			sec.Set(p.Name, o.Spec)
			res.Updated = append(res.Updated, p.Name)
		}
		res.Outcomes = append(res.Outcomes, o)
	}
	return res
}

// latestVersion queries the registry and accepts only a strict semantic
// version, so stray output never ends up in the manifest.
func latestVersion(reg Registry, name string) (string, error) {
	if reg == nil {
		return "", errors.New("no registry configured")
	}
	raw, err := reg.LatestVersion(name)
	if err != nil {
		return "", err
	}
	v, err := semver.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("registry returned invalid version %q: %w", raw, err)
	}
	return v.String(), nil
}

// ModeOf classifies an existing specifier: dev for local references,
// prod for anything else.
func ModeOf(spec string) Mode {
	if strings.HasPrefix(spec, "file:") || strings.HasPrefix(spec, "link:") {
		return ModeDev
	}
	return ModeProd
}
