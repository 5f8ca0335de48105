package untimed

import "fmt"

// Signature identifies a ground-atom family the grounder can enumerate:
// a functor together with its arity (including the trailing time argument).
type Signature struct {
	Functor string
	Arity   int
}

func (s Signature) String() string {
	return fmt.Sprintf("%s/%d", s.Functor, s.Arity)
}

// SignedSignature is a Signature qualified by the polarity under which it
// was referenced by some constraint element.
type SignedSignature struct {
	Sign int8
	Signature
}

// templateKey identifies an untimed-literal template: a functor plus its
// non-time arguments, exactly as it appears (minus the time index) in a
// constraint element such as `a(1)`.
type templateKey struct {
	functor string
	args    string
}

// SignatureRegistry holds the growing map from (functor, non-time args) to
// a dense UntimedLit id, plus the sign-qualified (functor, arity) set used
// to enumerate matching ground atoms when populating a LiteralMap. It is
// populated during Init, single-threaded, and frozen (read-only) once
// search begins; see spec §4.1 and §5.
type SignatureRegistry struct {
	ids    map[templateKey]UntimedLit
	order  []templateKey
	signed map[SignedSignature]struct{}
}

// NewSignatureRegistry returns an empty registry.
func NewSignatureRegistry() *SignatureRegistry {
	return &SignatureRegistry{
		ids:    make(map[templateKey]UntimedLit),
		signed: make(map[SignedSignature]struct{}),
	}
}

// Register returns the dense id for the (functor, args) template,
// assigning a fresh one (starting at 1) on first sighting. Idempotent.
func (r *SignatureRegistry) Register(functor string, args []string) UntimedLit {
	key := templateKey{functor: functor, args: joinArgs(args)}
	if id, ok := r.ids[key]; ok {
		return id
	}
	id := UntimedLit(len(r.order) + 1)
	r.ids[key] = id
	r.order = append(r.order, key)
	return id
}

// AddSigned records that `sign` applied to (functor, arity) participates in
// some constraint, so the literal map population pass knows which ground
// atom families to enumerate. Idempotent.
func (r *SignatureRegistry) AddSigned(sign int8, functor string, arity int) {
	r.signed[SignedSignature{Sign: sign, Signature: Signature{Functor: functor, Arity: arity}}] = struct{}{}
}

// Signed returns every (sign, signature) pair registered via AddSigned, in
// no particular order.
func (r *SignatureRegistry) Signed() []SignedSignature {
	out := make([]SignedSignature, 0, len(r.signed))
	for s := range r.signed {
		out = append(out, s)
	}
	return out
}

// Size returns fullsig_size: the number of distinct untimed-literal
// templates registered so far.
func (r *SignatureRegistry) Size() int {
	return len(r.order)
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ","
		}
		out += a
	}
	return out
}
