package untimed

// sizeOneConstraint is the size-1 specialisation called out in spec §4.7
// point 2: a constraint with exactly one atom never needs a watch at all,
// since its nogood for every AT can just be added as a permanent unit
// clause at build time. It registers nothing else; Propagate and Check
// never see live work because every AT is retired immediately.
type sizeOneConstraint struct {
	*base
}

var _ TheoryConstraint = (*sizeOneConstraint)(nil)

func newSizeOneConstraint(b *base) *sizeOneConstraint {
	return &sizeOneConstraint{base: b}
}

func (c *sizeOneConstraint) BuildWatches(init Init) []SolverLit {
	for a := c.tmin; a <= c.tmax; a++ {
		ng, ok := c.formNogood(a)
		c.retired[a] = true
		if !ok {
			continue
		}
		init.AddClause(negateAll(ng))
	}
	return nil
}

func (c *sizeOneConstraint) Propagate(Control, SolverLit) ([]WatchReplacement, bool) {
	return nil, true
}

// ground is the --watch-type=ground CLI variant (spec §6): the entire
// [tmin, tmax] range is eagerly pre-grounded at build time via the same
// machinery SetEagerGrounding/groundEagerly use for partial prefixes and
// suffixes, and no watches are registered at all.
type groundConstraint struct {
	*base
}

var _ TheoryConstraint = (*groundConstraint)(nil)

func newGroundConstraint(b *base) *groundConstraint {
	c := &groundConstraint{base: b}
	c.SetEagerGrounding(b.tmax+1, 0)
	return c
}

func (c *groundConstraint) BuildWatches(init Init) []SolverLit {
	c.groundEagerly(init)
	return nil
}

func (c *groundConstraint) Propagate(Control, SolverLit) ([]WatchReplacement, bool) {
	return nil, true
}

// checkOnlyConstraint is the --watch-type=check CLI variant: it registers
// no watches and so is never reached through Propagate, relying entirely
// on the periodic Check pass (base.Check, promoted by embedding) that the
// shell runs between solving steps.
type checkOnlyConstraint struct {
	*base
}

var _ TheoryConstraint = (*checkOnlyConstraint)(nil)

func newCheckOnlyConstraint(b *base) *checkOnlyConstraint {
	return &checkOnlyConstraint{base: b}
}

func (c *checkOnlyConstraint) BuildWatches(Init) []SolverLit {
	return nil
}

func (c *checkOnlyConstraint) Propagate(Control, SolverLit) ([]WatchReplacement, bool) {
	return nil, true
}
