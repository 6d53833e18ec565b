package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quonlang/quon/internal/config"
)

// The key codec maps Integer and String logical keys onto Object's single
// string key namespace: string keys carry the sigil prefix, integer keys are
// canonical decimal text (no leading zeros, no '+'). The encoding is
// bijective for keys the codec itself produced.
//
// Both directions panic on contract violations. A malformed stored key or a
// key of any other value kind means a collaborating component corrupted an
// Object or skipped validation, and silently patching that would mask the
// bug.

// EncodeKey maps an Integer or String logical key to its stored form.
func EncodeKey(key Value) string {
	switch key := key.(type) {
	case *Integer:
		return strconv.FormatInt(key.Value, 10)
	case *String:
		return config.KeySigil + key.Value
	default:
		panic(fmt.Sprintf("runtime: object key must be INTEGER or STRING, got %s", key.Type()))
	}
}

// DecodeKey recovers the logical key from its stored form.
func DecodeKey(key string) Value {
	if strings.HasPrefix(key, config.KeySigil) {
		return &String{Value: key[len(config.KeySigil):]}
	}
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("runtime: malformed object key %q", key))
	}
	return &Integer{Value: n}
}
