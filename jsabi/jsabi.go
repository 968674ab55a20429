//go:build js && wasm

// Package jsabi moves fixed-size base58 values across the JavaScript
// boundary of a js/wasm build. Values cross as plain strings; the boundary
// contract is that incoming strings are already valid, so a failed conversion
// panics instead of returning an error.
package jsabi

import (
	"fmt"
	"syscall/js"

	"github.com/streamingfast/bs58fixed"
)

// TypeDecl is the TypeScript declaration of a value crossing the boundary.
const TypeDecl = "export type Bs58Array = string"

func ToJS[A any, P bs58fixed.Storage[A]](a bs58fixed.Array[A, P]) js.Value {
	return js.ValueOf(a.String())
}

func FromJS[A any, P bs58fixed.Storage[A]](v js.Value) bs58fixed.Array[A, P] {
	return fromJS[A, P](v, 2)
}

// FromJSOptional maps null and undefined to the all-zero value.
func FromJSOptional[A any, P bs58fixed.Storage[A]](v js.Value) bs58fixed.Array[A, P] {
	if v.IsNull() || v.IsUndefined() {
		return bs58fixed.Array[A, P]{}
	}
	return fromJS[A, P](v, 2)
}

func ToJSArray[A any, P bs58fixed.Storage[A]](values []bs58fixed.Array[A, P]) js.Value {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value.String()
	}
	return js.ValueOf(out)
}

func FromJSArray[A any, P bs58fixed.Storage[A]](v js.Value) []bs58fixed.Array[A, P] {
	if v.Type() != js.TypeObject {
		panic(bs58fixed.ConversionFailure(fmt.Errorf("expected array, got %s", v.Type()), 1))
	}

	out := make([]bs58fixed.Array[A, P], v.Length())
	for i := range out {
		out[i] = fromJS[A, P](v.Index(i), 2)
	}
	return out
}

func fromJS[A any, P bs58fixed.Storage[A]](v js.Value, skip int) bs58fixed.Array[A, P] {
	if v.Type() != js.TypeString {
		panic(bs58fixed.ConversionFailure(fmt.Errorf("expected string, got %s", v.Type()), skip))
	}

	a, err := bs58fixed.ParseArray[A, P](v.String())
	if err != nil {
		panic(bs58fixed.ConversionFailure(err, skip))
	}
	return a
}
