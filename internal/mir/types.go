package mir

import "strings"

// TypeKind tags the closed set of type shapes the analyses recognize.
// Anything outside the set decodes as TypeOther and matches no rule.
type TypeKind string

const (
	// TypeAdt is an algebraic data type reference: path name + generic args.
	TypeAdt TypeKind = "adt"
	// TypeRef is a reference: pointee type + mutability.
	TypeRef TypeKind = "ref"
	// TypeUint is a fixed-width unsigned integer ("u8", "u16", ...).
	TypeUint TypeKind = "uint"
	// TypeFnDef is a function definition reference: path name + DefID + args.
	TypeFnDef TypeKind = "fndef"
	// TypeOther covers every kind the analyses do not inspect.
	TypeOther TypeKind = "other"
)

// Type is a structural type description.
//
// Only the fields relevant to the tagged Kind are populated; the rest stay
// zero. Generic args are positional, and arg 0 is conventionally a lifetime
// placeholder for the reference-shaped Anchor wrapper types.
type Type struct {
	Kind    TypeKind     `json:"kind"`
	Name    string       `json:"name,omitempty"`    // adt / fndef path name
	Def     DefID        `json:"def,omitempty"`     // fndef definition identity
	Args    []GenericArg `json:"args,omitempty"`    // adt / fndef generic args
	Elem    *Type        `json:"elem,omitempty"`    // ref pointee
	Mutable bool         `json:"mutable,omitempty"` // ref mutability
	Width   string       `json:"width,omitempty"`   // uint width
}

// GenericArgKind tags one positional generic argument.
type GenericArgKind string

const (
	ArgLifetime GenericArgKind = "lifetime"
	ArgType     GenericArgKind = "type"
	ArgConst    GenericArgKind = "const"
)

// GenericArg is one positional generic argument. Type is set only for
// ArgType.
type GenericArg struct {
	Kind GenericArgKind `json:"kind"`
	Type *Type          `json:"type,omitempty"`
}

// TypeArg returns the type argument at position i, or nil if the position is
// out of range or holds a non-type argument.
func TypeArg(args []GenericArg, i int) *Type {
	if i < 0 || i >= len(args) {
		return nil
	}
	if args[i].Kind != ArgType {
		return nil
	}
	return args[i].Type
}

// ShortName returns the final path segment of a rustc path name, e.g.
// "distribute::__client_accounts_distribute::DistributeRewards" ->
// "DistributeRewards". An empty name yields "".
func ShortName(path string) string {
	if path == "" {
		return ""
	}
	segs := strings.Split(path, ":")
	return segs[len(segs)-1]
}

// SubstKey renders generic args into a canonical, deterministic key string.
// Instances are deduplicated by (DefID, SubstKey); the same definition with
// different substitutions must yield different keys.
func SubstKey(args []GenericArg) string {
	if len(args) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('<')
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		switch a.Kind {
		case ArgLifetime:
			sb.WriteString("'_")
		case ArgConst:
			sb.WriteString("const")
		case ArgType:
			writeCanonicalType(&sb, a.Type)
		default:
			sb.WriteByte('?')
		}
	}
	sb.WriteByte('>')
	return sb.String()
}

func writeCanonicalType(sb *strings.Builder, t *Type) {
	if t == nil {
		sb.WriteByte('_')
		return
	}
	switch t.Kind {
	case TypeAdt:
		sb.WriteString(t.Name)
		if len(t.Args) > 0 {
			sb.WriteString(SubstKey(t.Args))
		}
	case TypeRef:
		sb.WriteByte('&')
		if t.Mutable {
			sb.WriteString("mut ")
		}
		writeCanonicalType(sb, t.Elem)
	case TypeUint:
		sb.WriteString(t.Width)
	case TypeFnDef:
		sb.WriteString("fn ")
		sb.WriteString(t.Name)
		if len(t.Args) > 0 {
			sb.WriteString(SubstKey(t.Args))
		}
	default:
		sb.WriteByte('?')
	}
}
