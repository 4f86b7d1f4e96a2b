package striplan

import (
	"sort"
	"strings"
)

// argSep separates encoded arguments inside Atom.argsKey. Object and variable
// names in this planner are simple identifiers (no whitespace), so a plain
// separator is sufficient for a canonical, collision-free join.
const argSep = "\x1f"

// Atom is a ground predicate instance: a predicate symbol plus an ordered
// tuple of object names. Atom is value-typed and comparable (both fields are
// plain strings), so it is safe to use directly as a map key and to compare
// with ==, matching the "hashable, equality by structure" requirement for
// facts.
type Atom struct {
	Predicate string
	argsKey   string
}

// NewAtom constructs an Atom from a predicate symbol and its arguments.
func NewAtom(predicate string, args ...string) Atom {
	return Atom{Predicate: predicate, argsKey: strings.Join(args, argSep)}
}

// Arguments returns the atom's argument tuple as a slice.
func (a Atom) Arguments() []string {
	if a.argsKey == "" {
		return nil
	}
	return strings.Split(a.argsKey, argSep)
}

func (a Atom) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(a.Predicate)
	for _, arg := range a.Arguments() {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	b.WriteByte(')')
	return b.String()
}

// FactSet is a set of facts. A state is a FactSet under the closed-world
// assumption: absence of an atom means it does not hold.
type FactSet map[Atom]struct{}

// NewFactSet builds a FactSet from the given atoms.
func NewFactSet(atoms ...Atom) FactSet {
	fs := make(FactSet, len(atoms))
	for _, a := range atoms {
		fs[a] = struct{}{}
	}
	return fs
}

// Clone returns a shallow independent copy of fs.
func (fs FactSet) Clone() FactSet {
	out := make(FactSet, len(fs))
	for a := range fs {
		out[a] = struct{}{}
	}
	return out
}

// Has reports whether a is present in fs.
func (fs FactSet) Has(a Atom) bool {
	_, ok := fs[a]
	return ok
}

// Contains reports whether fs is a superset of other (other ⊆ fs).
func (fs FactSet) Contains(other FactSet) bool {
	for a := range other {
		if !fs.Has(a) {
			return false
		}
	}
	return true
}

// Equal reports whether fs and other contain exactly the same atoms.
func (fs FactSet) Equal(other FactSet) bool {
	if len(fs) != len(other) {
		return false
	}
	return fs.Contains(other)
}

// Intersects reports whether fs and other share at least one atom.
func (fs FactSet) Intersects(other FactSet) bool {
	small, big := fs, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for a := range small {
		if big.Has(a) {
			return true
		}
	}
	return false
}

// Union returns a new FactSet containing every atom in fs or other.
func (fs FactSet) Union(other FactSet) FactSet {
	out := make(FactSet, len(fs)+len(other))
	for a := range fs {
		out[a] = struct{}{}
	}
	for a := range other {
		out[a] = struct{}{}
	}
	return out
}

// Minus returns a new FactSet containing every atom in fs that is not in other.
func (fs FactSet) Minus(other FactSet) FactSet {
	out := make(FactSet, len(fs))
	for a := range fs {
		if !other.Has(a) {
			out[a] = struct{}{}
		}
	}
	return out
}

// Add inserts a into fs, mutating it, and returns fs for chaining.
func (fs FactSet) Add(a Atom) FactSet {
	fs[a] = struct{}{}
	return fs
}

// Slice returns the atoms of fs as a slice, in an unspecified order.
func (fs FactSet) Slice() []Atom {
	out := make([]Atom, 0, len(fs))
	for a := range fs {
		out = append(out, a)
	}
	return out
}

// Sorted returns the atoms of fs sorted by their canonical string form, for
// deterministic iteration (printing, hashing, golden tests).
func (fs FactSet) Sorted() []Atom {
	out := fs.Slice()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Key returns a canonical string identifying the contents of fs, suitable for
// use as a map key. The A* closed set is keyed on this full string, not on a
// hash of it, so hash collisions cannot cause a reachable state to be
// skipped.
func (fs FactSet) Key() string {
	sorted := fs.Sorted()
	var b strings.Builder
	for _, a := range sorted {
		b.WriteString(a.String())
		b.WriteByte('|')
	}
	return b.String()
}
