package forest

// appendCannotProve records that a subgoal could not be soundly
// evaluated — either get_or_create_table_for_subgoal floundered on a
// negative literal with free existentials or truncation overflow, or a
// negative literal's own abstraction step did. Floundering never aborts
// the query: it degrades the answer to conditional instead.
func appendCannotProve(ex ExClause) ExClause {
	out := ex.clone()
	out.DelayedLiterals = append(out.DelayedLiterals, CannotProveDelay{})
	return out
}
