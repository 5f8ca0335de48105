package untimed

// ProgramLit is the grounder's literal for a theory-atom occurrence, as
// distinct from the solver literal it resolves to through Init.SolverLiteral
// (spec §6).
type ProgramLit int32

// SignatureDecl is one `&signature{...}` theory atom: a declaration that a
// (sign, functor, arity) family participates in some constraint and should
// be enumerable through Init.AtomsBySignature.
type SignatureDecl struct {
	Sign    int8
	Functor string
	Arity   int
}

// TheoryAtom is one user theory atom the grounder produced: either a
// `&constraint{...}` term (Term != nil) or a `&signature{...}` declaration
// (Decl != nil), per spec §6.
type TheoryAtom struct {
	Term *ConstraintTerm
	Decl *SignatureDecl
}

// Init is the subset of the host solver's initialization object the core
// depends on (spec §6): enumerating ground atoms and theory atoms,
// resolving program literals to solver literals, and registering watches
// and clauses before search begins.
type Init interface {
	AtomsBySignature(sig Signature) []GroundAtom
	TheoryAtoms() []TheoryAtom
	SolverLiteral(lit ProgramLit) SolverLit
	AddWatch(lit SolverLit)
	AddClause(lits []SolverLit) bool
}

// Control is the subset of the host solver's per-callback control object
// the core depends on during search (spec §6).
type Control interface {
	Assignment() Assignment
	AddNogood(lits []SolverLit, lock bool) bool
	Propagate() bool
	AddWatch(lit SolverLit)
	RemoveWatch(lit SolverLit)
	HasWatch(lit SolverLit) bool
}
