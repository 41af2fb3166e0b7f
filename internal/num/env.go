package num

// Sink is the character output the printing operations write through.
// It is the core's only notion of "the outside world": callers own
// the sink (stdout, a string builder, a socket — the core doesn't
// care) and are responsible for single-writer access, per spec §5.
type Sink interface {
	// PutChar writes one byte. Printing operations call it once per
	// output character; they never emit the backslash-newline line-wrap
	// sequence themselves, which is left to the sink.
	PutChar(c byte)
}
