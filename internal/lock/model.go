package lock

// FileName is the npm lock file.
const FileName = "package-lock.json"

// File is the subset of package-lock.json used for status reporting.
type File struct {
	LockfileVersion int
	Packages        map[string]*Package // keyed by package name
}

// Package records the installed state of a single dependency.
type Package struct {
	Version  string
	Resolved string
	Link     bool
}

// Installed returns the installed package for name, or nil.
func (f *File) Installed(name string) *Package {
	if f == nil {
		return nil
	}
	return f.Packages[name]
}
