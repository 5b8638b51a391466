package lock

import (
	"fmt"
	"os"
	"strings"

	"github.com/mailru/easyjson/jlexer"
)

const modulesPrefix = "node_modules/"

// Load reads a package-lock.json file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project lock file
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse parses package-lock.json content. Lock file v2/v3 "packages"
// entries take precedence over the v1 "dependencies" tree.
func Parse(data []byte) (*File, error) {
	in := jlexer.Lexer{Data: data}
	lf := &File{Packages: make(map[string]*Package)}
	legacy := make(map[string]*Package)

	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "lockfileVersion":
			lf.LockfileVersion = in.Int()
		case "packages":
			parseEntries(&in, func(path string, p *Package) {
				if name, ok := topLevelName(path); ok {
					lf.Packages[name] = p
				}
			})
		case "dependencies":
			parseEntries(&in, func(name string, p *Package) {
				legacy[name] = p
			})
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()

	if err := in.Error(); err != nil {
		return nil, fmt.Errorf("parsing lock JSON: %w", err)
	}
	for name, p := range legacy {
		if _, ok := lf.Packages[name]; !ok {
			lf.Packages[name] = p
		}
	}
	return lf, nil
}

func parseEntries(in *jlexer.Lexer, fn func(key string, p *Package)) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		p := parsePackage(in)
		if p != nil {
			fn(key, p)
		}
		in.WantComma()
	}
	in.Delim('}')
}

func parsePackage(in *jlexer.Lexer) *Package {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	p := &Package{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "version":
			p.Version = in.String()
		case "resolved":
			p.Resolved = in.String()
		case "link":
			p.Link = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	return p
}

// topLevelName maps a "node_modules/<name>" path to its package name.
// Nested installs and the root entry are rejected.
func topLevelName(path string) (string, bool) {
	if !strings.HasPrefix(path, modulesPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(path, modulesPrefix)
	if name == "" || strings.Contains(name, "/"+modulesPrefix) {
		return "", false
	}
	return name, true
}
