// Package cloner provides the JSON-clone capability the flow engine relies
// on to guarantee every operation hands back a value wholly disjoint from
// its input: marshal to JSON, unmarshal into a fresh value, nothing shared.
package cloner

import "encoding/json"

// Clone returns a deep copy of v produced by round-tripping it through JSON.
// It panics if v is not JSON-serializable, which would indicate a bug in the
// flow tree construction rather than a recoverable runtime condition.
func Clone[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		panic("cloner: value is not JSON-serializable: " + err.Error())
	}

	var out T

	if err := json.Unmarshal(data, &out); err != nil {
		panic("cloner: round-trip failed: " + err.Error())
	}

	return out
}
