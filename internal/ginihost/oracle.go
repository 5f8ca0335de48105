// Package ginihost wires github.com/go-air/gini into the untimed package's
// test suite as the ground-truth comparator for spec property 1
// (equivalence to naive grounding): rather than driving the propagator
// through gini, it compiles the fully-expanded, per-assigned-time clause
// set directly and enumerates every stable model, exactly as the teacher
// repo's litMapping/solve.go drive gini for its own SAT core.
package ginihost

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Oracle owns a real gini instance plus the circuit used to allocate
// variables (mirroring the teacher's litMapping, which allocates every
// variable through a logic.C and compiles it into the solver with
// ToCnf), plus the ordered list of variables it allocated so models can
// be reported back as aligned bool slices.
type Oracle struct {
	g    inter.S
	c    *logic.C
	vars []z.Lit
}

// NewOracle returns an Oracle backed by a fresh gini instance.
func NewOracle() *Oracle {
	return &Oracle{g: gini.New(), c: logic.NewCCap(64)}
}

// NewVar allocates a fresh Boolean variable and returns its positive
// literal, in allocation order; Models reports values in this order. The
// variable is only usable with the solver after Compile has run.
func (o *Oracle) NewVar() z.Lit {
	m := o.c.Lit()
	o.vars = append(o.vars, m)
	return m
}

// Compile pushes every variable and gate the circuit has accumulated into
// the solver. Call it once after every NewVar call and before Forbid or
// Models.
func (o *Oracle) Compile() {
	o.c.ToCnf(o.g)
}

// Forbid adds a permanent clause ruling out every literal in ms holding
// simultaneously: the negation of one assigned-time's nogood conjunction,
// i.e. exactly the fully-expanded clause spec property 1 compares against.
func (o *Oracle) Forbid(ms []z.Lit) {
	for _, m := range ms {
		o.g.Add(m.Not())
	}
	o.g.Add(z.LitNull)
}

// Models enumerates every satisfying assignment over the registered
// variables by solving and then adding a blocking clause, up to limit
// models (0 means unbounded). Each returned model is a bool per NewVar
// call, in allocation order.
func (o *Oracle) Models(limit int) [][]bool {
	var models [][]bool
	for limit == 0 || len(models) < limit {
		if o.g.Solve() != 1 {
			break
		}
		model := make([]bool, len(o.vars))
		block := make([]z.Lit, len(o.vars))
		for i, m := range o.vars {
			v := o.g.Value(m)
			model[i] = v
			if v {
				block[i] = m.Not()
			} else {
				block[i] = m
			}
		}
		models = append(models, model)
		for _, b := range block {
			o.g.Add(b)
		}
		o.g.Add(z.LitNull)
	}
	return models
}
