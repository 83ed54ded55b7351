package forest

// Minimums tracks the highest-up positive and negative dependency a
// strand has encountered while being pursued: the shallowest (smallest)
// DFN reached by, respectively, a positive Cycle signal and a negative
// one. Minimums are merged across sibling strands with TakeMin and
// compared against the current frame's own DFN by cycle to decide
// whether a cyclic subtree is closed, self-contained, or must propagate
// further up the stack.
type Minimums struct {
	Positive DFN
	Negative DFN
}

// MinimumsMax is the identity element for TakeMin: no dependency at all.
func MinimumsMax() Minimums {
	return Minimums{Positive: DFNMax, Negative: DFNMax}
}

// TakeMin merges other into m component-wise, keeping the smaller DFN in
// each field.
func (m *Minimums) TakeMin(other Minimums) {
	if other.Positive < m.Positive {
		m.Positive = other.Positive
	}
	if other.Negative < m.Negative {
		m.Negative = other.Negative
	}
}

// MinimumOfPosAndNeg returns the smaller of the two fields, used when a
// negative subgoal's cycle result is folded into the pursuing strand's
// own positive dependency.
func (m Minimums) MinimumOfPosAndNeg() DFN {
	if m.Positive < m.Negative {
		return m.Positive
	}
	return m.Negative
}
