// Package monitor runs dd and turns its diagnostic stream into display updates.
//
// A Monitor moves through four states:
//
//	Starting -> Running -> Finished
//	         \-> FailedEarly
//
// After spawning dd it waits for a fixed grace period. If dd has already
// exited by then (typically a bad path or option), its stderr is copied
// verbatim to the console and the live display is never started. Otherwise
// every line dd writes is classified as progress or diagnostic text and handed
// to the Display until the stream ends.
//
// Reading never times out: a dd that stalls without writing leaves Run
// blocked on the next line. Nothing that goes wrong while drawing aborts the
// copy; such problems are logged and the loop moves on.
package monitor
