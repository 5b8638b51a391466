package manifest

// Section names recognised in package.json.
const (
	Dependencies    = "dependencies"
	DevDependencies = "devDependencies"
)

// Manifest is a parsed package.json. Top-level members keep their original
// order; members other than the dependency sections are kept as raw JSON.
type Manifest struct {
	members []member
}

type member struct {
	key  string
	raw  []byte
	deps *Section
}

// Dependency is a single name → version specifier pair.
type Dependency struct {
	Name string
	Spec string
}

// Section is an ordered dependency table such as "dependencies".
type Section struct {
	Name    string
	entries []Dependency
	index   map[string]int
}

func newSection(name string) *Section {
	return &Section{Name: name, index: make(map[string]int)}
}

// Get returns the specifier for name.
func (s *Section) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.entries[i].Spec, true
}

// Has reports whether the section contains name.
func (s *Section) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Set updates name in place, or appends it when absent.
func (s *Section) Set(name, spec string) {
	if i, ok := s.index[name]; ok {
		s.entries[i].Spec = spec
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Dependency{Name: name, Spec: spec})
}

// Entries returns a copy of the section's dependencies in order.
func (s *Section) Entries() []Dependency {
	out := make([]Dependency, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of dependencies in the section.
func (s *Section) Len() int { return len(s.entries) }

// Section returns the named dependency table, or nil if the manifest has none.
func (m *Manifest) Section(name string) *Section {
	for _, mem := range m.members {
		if mem.key == name && mem.deps != nil {
			return mem.deps
		}
	}
	return nil
}

// EnsureSection returns the named dependency table, creating it at the end of
// the document when absent. A null member of that name is replaced in place.
func (m *Manifest) EnsureSection(name string) *Section {
	if s := m.Section(name); s != nil {
		return s
	}
	s := newSection(name)
	for i, mem := range m.members {
		if mem.key == name {
			m.members[i] = member{key: name, deps: s}
			return s
		}
	}
	m.members = append(m.members, member{key: name, deps: s})
	return s
}

// Keys returns the top-level member names in document order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.members))
	for i, mem := range m.members {
		keys[i] = mem.key
	}
	return keys
}

// Lookup searches dependencies first, then devDependencies, and returns the
// first section containing name.
func (m *Manifest) Lookup(name string) (*Section, bool) {
	for _, sec := range []string{Dependencies, DevDependencies} {
		if s := m.Section(sec); s != nil && s.Has(name) {
			return s, true
		}
	}
	return nil, false
}

// LocateOrCreate returns the section that holds name. When name is in
// neither dependency table, the dependencies table is returned (created if
// needed) and created is true. The name itself is not inserted.
func LocateOrCreate(m *Manifest, name string) (s *Section, created bool) {
	if s, ok := m.Lookup(name); ok {
		return s, false
	}
	return m.EnsureSection(Dependencies), true
}
