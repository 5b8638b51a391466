// Package pkgmgr wraps the package manager CLIs (npm, pnpm, yarn) used by
// npm-dependency-switcher: registry version lookups and installs. Commands
// run through a Runner so callers can substitute a fake.
package pkgmgr
