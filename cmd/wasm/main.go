//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/csscolor/color"
	"github.com/MeKo-Tech/csscolor/internal/convert"
	"github.com/MeKo-Tech/csscolor/manipulator"
)

// ConvertRequest represents a conversion request from JS
type ConvertRequest struct {
	Color    string `json:"color"`
	Notation string `json:"notation"`
	Op       string `json:"op,omitempty"`
	Amount   int    `json:"amount,omitempty"`
}

type ConvertResponse struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// convertColor is called from JavaScript with a JSON ConvertRequest and
// returns a JSON ConvertResponse.
func convertColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return respond(ConvertResponse{Error: "missing arguments"})
	}

	var req ConvertRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return respond(ConvertResponse{Error: fmt.Sprintf("failed to parse request: %v", err)})
	}

	c, err := color.FromCSS(req.Color)
	if err != nil {
		return respond(ConvertResponse{Error: err.Error()})
	}
	if req.Op != "" {
		op, err := manipulator.ParseOp(req.Op)
		if err != nil {
			return respond(ConvertResponse{Error: err.Error()})
		}
		if c, err = manipulator.Apply(c, op, req.Amount); err != nil {
			return respond(ConvertResponse{Error: err.Error()})
		}
	}

	notation := req.Notation
	if notation == "" {
		notation = string(convert.NotationRGB)
	}
	n, err := convert.ParseNotation(notation)
	if err != nil {
		return respond(ConvertResponse{Error: err.Error()})
	}
	out, err := convert.Render(c, n)
	if err != nil {
		return respond(ConvertResponse{Error: err.Error()})
	}
	return respond(ConvertResponse{Output: out})
}

func respond(resp ConvertResponse) string {
	b, _ := json.Marshal(resp)
	return string(b)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("csscolorConvert", js.FuncOf(convertColor))

	fmt.Println("csscolor WASM module loaded")
	<-c
}
