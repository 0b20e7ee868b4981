// Package parser extracts symbols and metadata from Go source files using AST parsing.
//
// The parser uses Go's standard library (go/parser, go/ast, go/token) to
// extract top-level functions, methods, types, struct fields, constants and
// variables. It is the consumer side of the sample fixture: tests in this
// package parse pkg/sample and pin down its exact symbol inventory.
//
// # Basic Usage
//
//	p := parser.New()
//	result, err := p.ParseFile("/path/to/file.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, symbol := range result.Symbols {
//	    fmt.Printf("Found %s: %s\n", symbol.Kind, symbol.Key())
//	}
//
// Whole directories are parsed concurrently with a bounded worker count:
//
//	results, err := parser.NewWithWorkers(4).ParseDir(ctx, dir, false)
//
// # Error Handling
//
// Syntax errors do not fail a parse:
//
//	result, err := p.ParseFile("broken.go")
//	// err is nil even for syntax errors
//
//	for _, parseErr := range result.Errors {
//	    fmt.Printf("%s:%d: %s\n", parseErr.File, parseErr.Line, parseErr.Message)
//	}
//
// Symbols from whatever partial AST the Go parser recovered are still
// returned. Only I/O failures surface as a returned error.
package parser
