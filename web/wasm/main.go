//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-stft/dsp/spectrum"
	"github.com/cwbudde/algo-stft/dsp/stft"
	"github.com/cwbudde/algo-stft/dsp/transform"
	"github.com/cwbudde/algo-stft/dsp/window"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	api.Set("fftReal", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}

		out, err := transform.Forward(toSamples(args[0]))
		if err != nil {
			return err.Error()
		}

		return toFloat32Array(out)
	}))

	api.Set("applyWindow", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Global().Get("Float32Array").New(0)
		}

		out, err := window.ApplyNamed(args[1].String(), toSamples(args[0]))
		if err != nil {
			return err.Error()
		}

		return toFloat32Array(out)
	}))

	api.Set("magnitudeDB", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Global().Get("Float32Array").New(0)
		}

		out, err := spectrum.MagnitudeDB(toSamples(args[0]), float32(args[1].Float()))
		if err != nil {
			return err.Error()
		}

		return toFloat32Array(out)
	}))

	api.Set("analyzeFrame", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Global().Get("Float32Array").New(0)
		}

		out, err := stft.AnalyzeFrame(toSamples(args[0]), args[1].String(), float32(args[2].Float()))
		if err != nil {
			return err.Error()
		}

		return toFloat32Array(out)
	}))

	js.Global().Set("AlgoSTFT", api)
	select {}
}

func toSamples(arr js.Value) []float32 {
	out := make([]float32, arr.Length())
	for i := range out {
		out[i] = float32(arr.Index(i).Float())
	}

	return out
}

func toFloat32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}

	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
