package forest

// maybeGrowStack executes fn. On chalk's host (Rust) this seam calls out
// to the stacker crate to grow the native stack before deeply recursive
// strand pursuit could overflow it; on Go, goroutine stacks already grow
// on demand, so there is nothing to do here. The seam stays, rather than
// inlining fn at its call site, so a caller with pathologically deep
// strand chains has one place to swap in an explicit trampoline without
// touching pursueStrand's recursive structure.
func maybeGrowStack(fn func()) {
	fn()
}
