//go:build js && wasm

// Command wasm registers the ytkit operations on the browser's global
// object. Build with:
//
//	GOOS=js GOARCH=wasm go build -o pkg/ytkit.wasm ./wasm
package main

import (
	"syscall/js"

	"ytkit/internal/bindings"
)

func main() {
	global := js.Global()
	for _, name := range bindings.Names() {
		global.Set(name, wrap(bindings.Exports[name]))
	}

	// Keep the Go runtime alive so the registered callbacks stay valid.
	select {}
}

func wrap(fn bindings.Func) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		goArgs := make([]any, len(args))
		for i, a := range args {
			goArgs[i] = toGo(a)
		}

		result, err := fn(goArgs)
		if err != nil {
			return js.Global().Get("Error").New(err.Error())
		}
		if result == nil {
			return js.Null()
		}
		return result
	})
}

func toGo(v js.Value) any {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	case js.TypeBoolean:
		return v.Bool()
	default:
		return nil
	}
}
