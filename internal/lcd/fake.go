package lcd

import "fmt"

// OpKind names a Display method.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpCursor OpKind = "cursor"
	OpPrint  OpKind = "print"
)

// Op is one recorded display call.
type Op struct {
	Kind OpKind
	Col  int
	Row  int
	Text string
}

func (o Op) String() string {
	switch o.Kind {
	case OpCursor:
		return fmt.Sprintf("cursor(%d,%d)", o.Col, o.Row)
	case OpPrint:
		return fmt.Sprintf("print(%q)", o.Text)
	default:
		return string(o.Kind) + "()"
	}
}

// FakeDisplay records display calls for test assertions.
type FakeDisplay struct {
	// Ops contains every successful call in order.
	Ops []Op

	// Shown contains the text of every Print, in order.
	Shown []string

	// ClearError, if set, will be returned by Clear.
	ClearError error

	// PrintError, if set, will be returned by Print.
	PrintError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeDisplay creates a FakeDisplay for testing.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// Clear records a clear.
func (f *FakeDisplay) Clear() error {
	if f.ClearError != nil {
		return f.ClearError
	}
	f.Ops = append(f.Ops, Op{Kind: OpClear})
	return nil
}

// SetCursor records a cursor move.
func (f *FakeDisplay) SetCursor(col, row int) error {
	f.Ops = append(f.Ops, Op{Kind: OpCursor, Col: col, Row: row})
	return nil
}

// Print records printed text.
func (f *FakeDisplay) Print(text string) error {
	if f.PrintError != nil {
		return f.PrintError
	}
	f.Ops = append(f.Ops, Op{Kind: OpPrint, Text: text})
	f.Shown = append(f.Shown, text)
	return nil
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded calls.
func (f *FakeDisplay) Reset() {
	f.Ops = nil
	f.Shown = nil
	f.ClearError = nil
	f.PrintError = nil
	f.Closed = false
}
