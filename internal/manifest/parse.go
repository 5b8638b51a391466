package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Load reads and parses a package.json file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses package.json content, keeping member order.
func Parse(data []byte) (*Manifest, error) {
	in := jlexer.Lexer{Data: data}
	m := &Manifest{}

	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		if isSection(key) && !in.IsNull() {
			m.members = append(m.members, member{key: key, deps: parseSection(&in, key)})
		} else {
			raw := in.Raw()
			m.members = append(m.members, member{key: key, raw: append([]byte(nil), raw...)})
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()

	if err := in.Error(); err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	return m, nil
}

func parseSection(in *jlexer.Lexer, name string) *Section {
	s := newSection(name)
	in.Delim('{')
	for !in.IsDelim('}') {
		dep := in.String()
		in.WantColon()
		s.Set(dep, in.String())
		in.WantComma()
	}
	in.Delim('}')
	return s
}

func isSection(key string) bool {
	return key == Dependencies || key == DevDependencies
}

// Marshal renders the manifest with two-space indentation and a trailing
// newline.
func Marshal(m *Manifest) ([]byte, error) {
	w := jwriter.Writer{NoEscapeHTML: true}
	w.RawByte('{')
	for i, mem := range m.members {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(mem.key)
		w.RawByte(':')
		if mem.deps != nil {
			writeSection(&w, mem.deps)
		} else {
			w.Raw(mem.raw, nil)
		}
	}
	w.RawByte('}')

	compact, err := w.BuildBytes()
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeSection(w *jwriter.Writer, s *Section) {
	w.RawByte('{')
	for i, d := range s.entries {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(d.Name)
		w.RawByte(':')
		w.String(d.Spec)
	}
	w.RawByte('}')
}

// Save writes the manifest to disk, overwriting any existing file.
func Save(path string, m *Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // package.json needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
