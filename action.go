package striplan

import "github.com/cespare/xxhash/v2"

// GroundAction is a frozen, fully-bound instance of a Schema: a schema name,
// a total variable binding, and the four fact sets that result from applying
// that binding to the schema's patterns. GroundAction is a plain value type;
// two ground actions with the same schema name and binding key compare equal
// under Equal, and Hash is stable for the same (name, binding).
type GroundAction struct {
	SchemaName string
	Binding    Binding
	PrecondPos FactSet
	PrecondNeg FactSet
	EffectPos  FactSet
	EffectNeg  FactSet
}

// voidSchemaName identifies the synthetic no-op action used only within RPG
// construction to carry facts forward between layers (§3 "Void action").
const voidSchemaName = "\x00void"

// VoidAction returns the synthetic no-op described in spec.md §3,
// parameterized by state s: precondition_pos = s, effect_pos = s, with both
// negative sets empty. It guarantees RPG fact-layer monotonicity.
func VoidAction(s FactSet) GroundAction {
	return GroundAction{
		SchemaName: voidSchemaName,
		Binding:    Binding{},
		PrecondPos: s,
		PrecondNeg: FactSet{},
		EffectPos:  s,
		EffectNeg:  FactSet{},
	}
}

// IsVoid reports whether a is the synthetic void action.
func (a GroundAction) IsVoid() bool { return a.SchemaName == voidSchemaName }

// Key returns a canonical string identifying a by schema name and binding,
// used as a stable, collision-free identity for de-duplication and as a
// Layered Graph node label key.
func (a GroundAction) Key() string {
	return a.SchemaName + "(" + a.Binding.Key() + ")"
}

// Hash returns a 64-bit digest of a.Key(), for use as a cheap trace/debug
// identifier (logging fields, RPG node indexing buckets). It is never used
// as the sole key for correctness-critical lookups — see FactSet.Key and the
// A* closed set, which are keyed on full canonical strings.
func (a GroundAction) Hash() uint64 {
	return xxhash.Sum64String(a.Key())
}

// Equal reports whether a and b have the same schema name and binding.
func (a GroundAction) Equal(b GroundAction) bool {
	return a.SchemaName == b.SchemaName && a.Binding.Key() == b.Binding.Key()
}

func (a GroundAction) String() string {
	return a.Key()
}
