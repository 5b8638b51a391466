// Package switcher rewrites manifest dependency specifiers for a mode:
// local file: references in dev mode, caret-pinned registry versions in
// prod mode. It never touches the filesystem.
package switcher
