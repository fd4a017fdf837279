//go:build js && wasm

package main

import (
	"bytes"
	"fmt"
	"strings"
	"syscall/js"

	"rpncalc/internal/cmd"
	"rpncalc/internal/session"
)

// evaluateExpression evaluates a postfix expression string and returns the
// printed result plus any rendered diagnostics
func evaluateExpression(expr string, verbose bool) (string, string, error) {
	jsConsole := js.Global().Get("console")

	// Defer panic recovery
	defer func() {
		if r := recover(); r != nil {
			jsConsole.Call("error", "PANIC in evaluateExpression:", fmt.Sprint(r))
		}
	}()

	options := &session.Options{
		Verbose: verbose,
	}

	// WASM has no process streams; bind the session to in-memory buffers
	var out bytes.Buffer
	sess := session.New(options)
	sess.In = strings.NewReader(expr)
	sess.Out = &out
	sess.ErrOut = &out

	err := cmd.Run(sess)
	return out.String(), sess.Diagnostics.EmitAllToString(), err
}

// rpnEvaluateJS is the JavaScript-callable function
func rpnEvaluateJS(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (expression string)",
		}
	}

	expr := args[0].String()
	verbose := false
	if len(args) > 1 {
		verbose = args[1].Bool()
	}

	output, diags, err := evaluateExpression(expr, verbose)
	if err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   diags,
		}
	}

	result := map[string]interface{}{
		"success": true,
		"output":  output,
	}
	if diags != "" {
		result["warnings"] = diags
	}
	return result
}

func main() {
	// Prevent the program from exiting
	c := make(chan struct{})

	// Register JavaScript function
	js.Global().Set("rpnEvaluate", js.FuncOf(rpnEvaluateJS))

	fmt.Println("RPN evaluator ready")

	// Keep the program running
	<-c
}
