package sink

// Sink is an output destination for rendered log lines. Emit writes a
// single line; the sink appends the line terminator itself.
type Sink interface {
	Emit(line string) error
}
