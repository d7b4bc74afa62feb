package types

// ExclusionSet is an ordered list of base names skipped during traversal.
// Matching is exact string equality and applies to files and directories alike.
type ExclusionSet struct {
	names  []string
	lookup map[string]struct{}
}

// NewExclusionSet builds a set preserving the order of names.
func NewExclusionSet(names []string) ExclusionSet {
	ordered := make([]string, 0, len(names))
	lookup := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, exists := lookup[name]; exists {
			continue
		}
		lookup[name] = struct{}{}
		ordered = append(ordered, name)
	}
	return ExclusionSet{names: ordered, lookup: lookup}
}

// Contains reports whether name is excluded.
func (set ExclusionSet) Contains(name string) bool {
	_, exists := set.lookup[name]
	return exists
}

// Names returns a copy of the excluded names in their configured order.
func (set ExclusionSet) Names() []string {
	names := make([]string, len(set.names))
	copy(names, set.names)
	return names
}

// Len returns the number of distinct excluded names.
func (set ExclusionSet) Len() int {
	return len(set.names)
}
