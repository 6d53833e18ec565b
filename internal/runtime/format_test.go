package runtime

import (
	"bytes"
	"testing"
)

// Non-terminal writers always receive the plain Inspect text, with no escape
// sequences.
func TestDisplayPlainWriter(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", &Integer{Value: -3}, "-3"},
		{"string", &String{Value: "hi"}, "hi"},
		{"error", ERR, "err"},
		{"thread", &Thread{Current: true}, "@this"},
		{"list", NewList(&Integer{Value: 1}, &Integer{Value: 2}), "[12]"},
		{"void", VOID, "()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Display(&buf, tt.v); err != nil {
				t.Fatalf("Display returned error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Display(%s) wrote %q, want %q", tt.name, buf.String(), tt.want)
			}
		})
	}
}
