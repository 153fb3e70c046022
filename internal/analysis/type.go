package analysis

import "strings"

// TypeKind discriminates Type's tagged-union variants (§3: "a tagged union
// {Null, Number, String, Boolean, Undefined, Object, Array<T>, Any,
// Hint(typeof), Unknown, Never, Instance(classId), Interface(I),
// Intersection<[T]>, Union<[T]>}").
type TypeKind int

const (
	TyNull TypeKind = iota
	TyNumber
	TyString
	TyBoolean
	TyUndefined
	TyObject
	TyArray
	TyAny
	TyHint
	TyUnknown
	TyNever
	TyInstance
	TyInterface
	TyIntersection
	TyUnion
)

// InterfaceShape is the `I` payload of a TyInterface Type: "a property
// list, an optional index-signature (K→V), an optional call signature, and
// an optional set of typeof labels" (§3).
type InterfaceShape struct {
	Properties   map[string]Type
	IndexKey     *Type
	IndexValue   *Type
	HasCallSig   bool
	TypeofLabels []string
}

// Type is the best-effort inferred type of an expression. Only the fields
// relevant to Kind are populated; the rest are left zero.
type Type struct {
	Kind TypeKind

	Elem      *Type  // Array<T>
	Hint      string // Hint(typeof) label, e.g. "function", "class"
	ClassID   string // Instance(classId)
	Interface *InterfaceShape
	Members   []Type // Intersection/Union members, always >= 2 and pre-canonicalized
}

func (t Type) String() string {
	switch t.Kind {
	case TyArray:
		return "Array<" + t.Elem.String() + ">"
	case TyHint:
		return "Hint(" + t.Hint + ")"
	case TyInstance:
		return "Instance(" + t.ClassID + ")"
	case TyUnion:
		return join(t.Members, " | ")
	case TyIntersection:
		return join(t.Members, " & ")
	default:
		return [...]string{
			"Null", "Number", "String", "Boolean", "Undefined", "Object",
			"Array", "Any", "Hint", "Unknown", "Never", "Instance", "Interface",
			"Intersection", "Union",
		}[t.Kind]
	}
}

func join(ts []Type, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

var (
	Null      = Type{Kind: TyNull}
	Number    = Type{Kind: TyNumber}
	String    = Type{Kind: TyString}
	Boolean   = Type{Kind: TyBoolean}
	Undefined = Type{Kind: TyUndefined}
	Object    = Type{Kind: TyObject}
	Any       = Type{Kind: TyAny}
	Unknown   = Type{Kind: TyUnknown}
	Never     = Type{Kind: TyNever}
)

// ArrayOf builds Array<elem>.
func ArrayOf(elem Type) Type { return Type{Kind: TyArray, Elem: &elem} }

// HintOf builds a best-effort Hint(typeof) type for constructs inference
// doesn't descend into (new expressions, function/class literals, §4.7).
func HintOf(label string) Type { return Type{Kind: TyHint, Hint: label} }

// InstanceOf builds Instance(classId).
func InstanceOf(classID string) Type { return Type{Kind: TyInstance, ClassID: classID} }

// key canonicalizes a Type to a string for de-duplication purposes within
// NewUnion/NewIntersection. Two Types with the same key are treated as
// the same member.
func key(t Type) string { return t.String() }

// NewUnion builds a Union type, canonicalizing per §9: flattening nested
// unions and collapsing to the single member's own type when only one
// distinct member remains after de-duplication.
func NewUnion(members []Type) Type {
	flat := flatten(members, TyUnion)
	deduped := dedupe(flat)
	if len(deduped) == 1 {
		return deduped[0]
	}
	return Type{Kind: TyUnion, Members: deduped}
}

// NewIntersection mirrors NewUnion for Intersection<[T]>.
func NewIntersection(members []Type) Type {
	flat := flatten(members, TyIntersection)
	deduped := dedupe(flat)
	if len(deduped) == 1 {
		return deduped[0]
	}
	return Type{Kind: TyIntersection, Members: deduped}
}

func flatten(members []Type, kind TypeKind) []Type {
	var out []Type
	for _, m := range members {
		if m.Kind == kind {
			out = append(out, m.Members...)
		} else {
			out = append(out, m)
		}
	}
	return out
}

func dedupe(members []Type) []Type {
	seen := make(map[string]bool, len(members))
	var out []Type
	for _, m := range members {
		k := key(m)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

// StripNonNull implements TS non-null (`!`) semantics (§4.7): "strips
// Null/Undefined from a union, collapsing single-element unions". Applied
// to a bare Null or Undefined it has nothing left to be, so it resolves to
// Never (§7 "Type-inference fallback ... Ty::Never for impossible cases").
func StripNonNull(t Type) Type {
	switch t.Kind {
	case TyNull, TyUndefined:
		return Never
	case TyUnion:
		var kept []Type
		for _, m := range t.Members {
			if m.Kind != TyNull && m.Kind != TyUndefined {
				kept = append(kept, m)
			}
		}
		switch len(kept) {
		case 0:
			return Never
		case 1:
			return kept[0]
		default:
			return Type{Kind: TyUnion, Members: kept}
		}
	default:
		return t
	}
}
