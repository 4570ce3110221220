package conf

import "sort"

// Shared read-only results for lookups that miss. Reads never insert.
var (
	emptySection = &Section{}
	emptyGroup   = &SectionGroup{}
)

// -------- Section --------

// Section is a flat field map. Keys are unique, last write wins.
type Section struct {
	fields map[string]string
}

func (s *Section) HasField(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Field reports the raw string value of key and whether it is present.
// Absence is a normal outcome, not an error.
func (s *Section) Field(key string) (string, bool) {
	v, ok := s.fields[key]
	return v, ok
}

// SetField inserts or overwrites a field.
func (s *Section) SetField(key, value string) {
	if s.fields == nil {
		s.fields = make(map[string]string)
	}
	s.fields[key] = value
}

// Iterate calls fn for every field of the section, in map order.
func (s *Section) Iterate(fn func(key, value string)) {
	for k, v := range s.fields {
		fn(k, v)
	}
}

func (s *Section) Len() int {
	return len(s.fields)
}

// Keys returns the field keys in sorted order.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// -------- SectionGroup --------

// SectionGroup holds the named sections of one group. The empty string
// is a valid section name and names the group's default section.
type SectionGroup struct {
	sections map[string]*Section
}

func (g *SectionGroup) HasSection(name string) bool {
	_, ok := g.sections[name]
	return ok
}

// Section returns the named section, or a shared empty section when it
// does not exist. The result of a miss must be treated read-only; use
// EnsureSection to write.
func (g *SectionGroup) Section(name string) *Section {
	if s, ok := g.sections[name]; ok {
		return s
	}
	return emptySection
}

// EnsureSection returns the named section, creating it if needed.
func (g *SectionGroup) EnsureSection(name string) *Section {
	if s, ok := g.sections[name]; ok {
		return s
	}
	if g.sections == nil {
		g.sections = make(map[string]*Section)
	}
	s := &Section{fields: make(map[string]string)}
	g.sections[name] = s
	return s
}

// SectionNames returns the section names in sorted order.
func (g *SectionGroup) SectionNames() []string {
	names := make([]string, 0, len(g.sections))
	for name := range g.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// -------- Table --------

// Table is the root of a parsed document: named section groups, each
// holding named sections, each holding fields. The empty string names
// the default group.
type Table struct {
	groups map[string]*SectionGroup
}

func NewTable() *Table {
	return &Table{groups: make(map[string]*SectionGroup)}
}

func (t *Table) HasGroup(name string) bool {
	_, ok := t.groups[name]
	return ok
}

// Group returns the named group, or a shared empty group when it does
// not exist. The result of a miss must be treated read-only; use
// EnsureGroup to write.
func (t *Table) Group(name string) *SectionGroup {
	if g, ok := t.groups[name]; ok {
		return g
	}
	return emptyGroup
}

// EnsureGroup returns the named group, creating it if needed.
func (t *Table) EnsureGroup(name string) *SectionGroup {
	if g, ok := t.groups[name]; ok {
		return g
	}
	if t.groups == nil {
		t.groups = make(map[string]*SectionGroup)
	}
	g := &SectionGroup{sections: make(map[string]*Section)}
	t.groups[name] = g
	return g
}

// GroupNames returns the group names in sorted order.
func (t *Table) GroupNames() []string {
	names := make([]string, 0, len(t.groups))
	for name := range t.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map flattens the table into plain nested maps, group name to section
// name to fields. Sections share no storage with the table.
func (t *Table) Map() map[string]map[string]map[string]string {
	out := make(map[string]map[string]map[string]string, len(t.groups))
	for gname, g := range t.groups {
		gm := make(map[string]map[string]string, len(g.sections))
		for sname, s := range g.sections {
			sm := make(map[string]string, len(s.fields))
			for k, v := range s.fields {
				sm[k] = v
			}
			gm[sname] = sm
		}
		out[gname] = gm
	}
	return out
}
