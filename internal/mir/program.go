package mir

// DefID is a process-lifetime-unique definition identity assigned by the
// front end. Identity equality is the only reliable comparison between
// definitions.
type DefID uint64

// ItemKind tags top-level crate items.
type ItemKind string

const (
	ItemFn     ItemKind = "fn"
	ItemStatic ItemKind = "static"
	ItemConst  ItemKind = "const"
)

// Item is one top-level item of the analyzed crate.
type Item struct {
	ID   DefID    `json:"id"`
	Kind ItemKind `json:"kind"`
	Name string   `json:"name"`
	// Generic is true when the item still requires monomorphization and
	// therefore cannot become an Instance without substitutions.
	Generic bool  `json:"generic,omitempty"`
	Body    *Body `json:"body,omitempty"`
}

// AdtKind tags algebraic data type definitions.
type AdtKind string

const (
	AdtStruct AdtKind = "struct"
	AdtEnum   AdtKind = "enum"
	AdtUnion  AdtKind = "union"
)

// AdtDef is the definition of an algebraic data type, with its variants and
// fields. Field order is fixed at definition time and is the correlation key
// between account contexts and mutability facts.
type AdtDef struct {
	Name     string    `json:"name"`
	Kind     AdtKind   `json:"adt_kind"`
	Local    bool      `json:"local,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

// FirstVariant returns the first field-carrying variant, or nil.
func (a *AdtDef) FirstVariant() *Variant {
	if a == nil || len(a.Variants) == 0 {
		return nil
	}
	return &a.Variants[0]
}

// Variant is one variant of an ADT. For structs it is the sole variant and
// its name is the struct's short name.
type Variant struct {
	Name   string     `json:"name"`
	Fields []FieldDef `json:"fields,omitempty"`
}

// FieldDef is one named, typed field.
type FieldDef struct {
	Name string `json:"name"`
	Type *Type  `json:"type"`
}

// TraitImpl records one trait implementation: which trait, for which type,
// with which associated functions.
type TraitImpl struct {
	TraitName string    `json:"trait_name"`
	SelfType  *Type     `json:"self_type"`
	AssocFns  []AssocFn `json:"assoc_fns,omitempty"`
}

// AssocFn is an associated function of a trait impl. HasSelf distinguishes
// methods from static associated functions.
type AssocFn struct {
	Name    string `json:"name"`
	HasSelf bool   `json:"has_self,omitempty"`
}

// Program is one crate's worth of MIR, decoded from a front-end snapshot.
// It is read-only after Init; analyses share it without copying.
type Program struct {
	Crate      string       `json:"crate"`
	Items      []*Item      `json:"items"`
	Adts       []*AdtDef    `json:"adts,omitempty"`
	TraitImpls []*TraitImpl `json:"trait_impls,omitempty"`

	itemsByID  map[DefID]*Item
	adtsByName map[string]*AdtDef
}

// Init builds the lookup indexes. LoadSnapshot and DecodeSnapshot call it;
// tests constructing a Program literal must call it themselves.
func (p *Program) Init() {
	p.itemsByID = make(map[DefID]*Item, len(p.Items))
	for _, it := range p.Items {
		if it != nil {
			p.itemsByID[it.ID] = it
		}
	}
	p.adtsByName = make(map[string]*AdtDef, len(p.Adts))
	for _, a := range p.Adts {
		if a != nil {
			p.adtsByName[a.Name] = a
		}
	}
}

// Item returns the item with the given identity, or nil.
func (p *Program) Item(id DefID) *Item {
	return p.itemsByID[id]
}

// Adt returns the ADT definition with the given path name, or nil.
func (p *Program) Adt(name string) *AdtDef {
	return p.adtsByName[name]
}
