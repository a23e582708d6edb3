package mir

// Body is an ordered sequence of basic blocks plus the function's local
// declarations. Local 0 is the return place; locals 1..ArgCount are the
// formal parameters, in order. Block indices are stable within one Body
// only; they are not comparable across bodies.
type Body struct {
	Blocks   []Block     `json:"blocks"`
	Locals   []LocalDecl `json:"locals"`
	ArgCount int         `json:"arg_count"`
}

// LocalDecl declares one local variable slot.
type LocalDecl struct {
	Type *Type `json:"type"`
}

// LocalDecl returns the declaration of local i, or nil if i is out of range.
func (b *Body) LocalDecl(i int) *LocalDecl {
	if b == nil || i < 0 || i >= len(b.Locals) {
		return nil
	}
	return &b.Locals[i]
}

// Block holds an ordered statement list and exactly one terminator.
type Block struct {
	Statements []Statement `json:"statements"`
	Terminator Terminator  `json:"terminator"`
}

// LastStatement returns the statement immediately preceding the terminator,
// or nil for an empty block.
func (b *Block) LastStatement() *Statement {
	if len(b.Statements) == 0 {
		return nil
	}
	return &b.Statements[len(b.Statements)-1]
}

// TerminatorKind tags the closed terminator set.
type TerminatorKind string

const (
	TermGoto        TerminatorKind = "goto"
	TermSwitch      TerminatorKind = "switch"
	TermCall        TerminatorKind = "call"
	TermReturn      TerminatorKind = "return"
	TermUnreachable TerminatorKind = "unreachable"
	TermAbort       TerminatorKind = "abort"
)

// Terminator ends a basic block. Targets carries branch successors for
// goto/switch; Call is set only for TermCall.
type Terminator struct {
	Kind    TerminatorKind `json:"kind"`
	Targets []int          `json:"targets,omitempty"`
	Call    *CallTerm      `json:"call,omitempty"`
}

// CallTerm is the payload of a call terminator. Target is the block the call
// returns to, nil for diverging calls.
type CallTerm struct {
	Func   Operand   `json:"func"`
	Args   []Operand `json:"args,omitempty"`
	Target *int      `json:"target,omitempty"`
}

// Successors returns the in-body block indices this terminator can branch
// to. Return/unreachable/abort terminators have none.
func (t *Terminator) Successors() []int {
	switch t.Kind {
	case TermGoto, TermSwitch:
		return t.Targets
	case TermCall:
		if t.Call != nil && t.Call.Target != nil {
			return []int{*t.Call.Target}
		}
		return nil
	default:
		return nil
	}
}

// StatementKind tags the statements the analyses inspect. Everything else
// decodes as StmtOther.
type StatementKind string

const (
	StmtAssign StatementKind = "assign"
	StmtOther  StatementKind = "other"
)

// Statement is one non-terminator instruction.
type Statement struct {
	Kind   StatementKind `json:"kind"`
	Assign *AssignStmt   `json:"assign,omitempty"`
}

// AssignStmt writes the value of Rvalue into Place.
type AssignStmt struct {
	Place  Place  `json:"place"`
	Rvalue Rvalue `json:"rvalue"`
}

// RvalueKind tags the right-hand sides the analyses inspect.
type RvalueKind string

const (
	RvalueUse       RvalueKind = "use"
	RvalueAggregate RvalueKind = "aggregate"
	RvalueOther     RvalueKind = "other"
)

// Rvalue is the right-hand side of an assignment.
type Rvalue struct {
	Kind      RvalueKind     `json:"kind"`
	Use       *Operand       `json:"use,omitempty"`
	Aggregate *AggregateRval `json:"aggregate,omitempty"`
}

// AggregateKind tags aggregate constructions. Only arrays matter here (the
// byte-constant extractors); other aggregates decode as AggOther.
type AggregateKind string

const (
	AggArray AggregateKind = "array"
	AggOther AggregateKind = "other"
)

// AggregateRval builds a compound value from element operands.
type AggregateRval struct {
	Kind     AggregateKind `json:"kind"`
	ElemType *Type         `json:"elem_type,omitempty"`
	Operands []Operand     `json:"operands,omitempty"`
}

// OperandKind tags how an operand sources its value.
type OperandKind string

const (
	OperandCopy     OperandKind = "copy"
	OperandMove     OperandKind = "move"
	OperandConstant OperandKind = "constant"
)

// Operand reads a place (copy/move) or a constant.
type Operand struct {
	Kind  OperandKind   `json:"kind"`
	Place *Place        `json:"place,omitempty"`
	Const *ConstOperand `json:"const,omitempty"`
}

// ConstOperand is a literal with its type and, when the constant is an
// allocated value, its raw allocation bytes.
type ConstOperand struct {
	Type  *Type  `json:"type"`
	Bytes []byte `json:"bytes,omitempty"`
}

// ProjectionKind tags one step of a place projection path.
type ProjectionKind string

const (
	ProjDeref ProjectionKind = "deref"
	ProjField ProjectionKind = "field"
	ProjOther ProjectionKind = "other"
)

// Projection is one element of a place's projection path. Field is set only
// for ProjField.
type Projection struct {
	Kind  ProjectionKind `json:"kind"`
	Field int            `json:"field,omitempty"`
}

// Place denotes a storage location: a local index plus an ordered projection
// path.
type Place struct {
	Local      int          `json:"local"`
	Projection []Projection `json:"projection,omitempty"`
}

// DerefField reports whether the place is exactly (*local).field and, if so,
// returns the field index. This is the shape Anchor's generated
// to_account_metas bodies use to read context fields.
func (p *Place) DerefField() (int, bool) {
	if p == nil || len(p.Projection) != 2 {
		return 0, false
	}
	if p.Projection[0].Kind != ProjDeref || p.Projection[1].Kind != ProjField {
		return 0, false
	}
	return p.Projection[1].Field, true
}
