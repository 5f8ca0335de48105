package untimed

// LockKind selects a TheoryConstraint's locking policy (spec §4.5).
type LockKind int8

const (
	// LockNever lets the host solver evict added nogoods freely.
	LockNever LockKind = iota
	// LockAlways locks every added nogood permanently.
	LockAlways
	// LockThreshold locks an AT's nogood once it has been added
	// Threshold times, then retires that AT from the lazy path.
	LockThreshold
)

// LockPolicy configures when a TheoryConstraint's added nogoods become
// permanent clauses (spec §4.5).
type LockPolicy struct {
	Kind      LockKind
	Threshold int // only meaningful when Kind == LockThreshold; must be > 0
}

// NeverLock is the default locking policy.
func NeverLock() LockPolicy { return LockPolicy{Kind: LockNever} }

// AlwaysLock locks every nogood a constraint adds.
func AlwaysLock() LockPolicy { return LockPolicy{Kind: LockAlways} }

// ThresholdLock locks an AT's nogood after it has been added k times.
func ThresholdLock(k int) LockPolicy { return LockPolicy{Kind: LockThreshold, Threshold: k} }
