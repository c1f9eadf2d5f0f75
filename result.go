package exess

// FixedResult is returned by codecs whose input and output byte counts are
// the same quantity: parsers report bytes consumed from the input, writers
// report bytes written to the output (never including a null terminator,
// since this package has none).
type FixedResult struct {
	Status Status
	Count  int
}

// Err adapts r to the standard error interface; it returns nil on success.
func (r FixedResult) Err() error {
	return r.Status.Err()
}

// VariableResult is returned by codecs whose input and output sizes differ:
// binary decode/encode, canonicalization, and the generic value-level reader.
type VariableResult struct {
	Status     Status
	ReadCount  int
	WriteCount int
}

// Err adapts r to the standard error interface; it returns nil on success.
func (r VariableResult) Err() error {
	return r.Status.Err()
}

func fixed(status Status, count int) FixedResult {
	return FixedResult{Status: status, Count: count}
}

func variable(status Status, read, write int) VariableResult {
	return VariableResult{Status: status, ReadCount: read, WriteCount: write}
}
