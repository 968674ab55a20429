//go:build js && wasm

// Command bs58fixed-wasm exposes a handful of functions over 32-byte keys to
// JavaScript, exercising every way a key can cross the boundary.
package main

import (
	"syscall/js"

	"github.com/streamingfast/bs58fixed"
	"github.com/streamingfast/bs58fixed/jsabi"
)

type Pubkey = bs58fixed.PubkeyArray

func zeroLast(key Pubkey) Pubkey {
	key.Bytes()[31] = 0
	return key
}

func main() {
	global := js.Global()

	// zeroLast(key: Bs58Array): Bs58Array
	global.Set("zeroLast", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		return jsabi.ToJS(zeroLast(jsabi.FromJS[bs58fixed.Len44](args[0])))
	}))

	// zeroLastOpt(key?: Bs58Array): Bs58Array, all zeros when key is absent
	global.Set("zeroLastOpt", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		arg := js.Undefined()
		if len(args) > 0 {
			arg = args[0]
		}

		return jsabi.ToJS(zeroLast(jsabi.FromJSOptional[bs58fixed.Len44](arg)))
	}))

	// zeroLastVec(keys: Bs58Array[]): Bs58Array[]
	global.Set("zeroLastVec", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		keys := jsabi.FromJSArray[bs58fixed.Len44](args[0])
		for i := range keys {
			keys[i] = zeroLast(keys[i])
		}
		return jsabi.ToJSArray(keys)
	}))

	// zeroLastObj({arg: Bs58Array}): {arg: Bs58Array}
	global.Set("zeroLastObj", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		key := jsabi.FromJS[bs58fixed.Len44](args[0].Get("arg"))
		return js.ValueOf(map[string]interface{}{"arg": jsabi.ToJS(zeroLast(key))})
	}))

	// zeroLastOptObj({arg?: Bs58Array}): {arg: Bs58Array}, all zeros when arg is absent
	global.Set("zeroLastOptObj", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		key := jsabi.FromJSOptional[bs58fixed.Len44](args[0].Get("arg"))
		return js.ValueOf(map[string]interface{}{"arg": jsabi.ToJS(zeroLast(key))})
	}))

	// zeroLastVecObj({arg: Bs58Array[]}): {arg: Bs58Array[]}
	global.Set("zeroLastVecObj", js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		keys := jsabi.FromJSArray[bs58fixed.Len44](args[0].Get("arg"))
		for i := range keys {
			keys[i] = zeroLast(keys[i])
		}
		return js.ValueOf(map[string]interface{}{"arg": jsabi.ToJSArray(keys)})
	}))

	select {}
}
