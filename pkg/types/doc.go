// Package types provides shared type definitions for the fixture analyzer.
//
// Symbol represents a Go language construct (function, method, type, field,
// const or var) extracted from source code via AST parsing:
//
//	symbol := &types.Symbol{
//	    Name:      "FindMax",
//	    Kind:      types.KindFunction,
//	    Package:   "sample",
//	    Signature: "func FindMax(numbers []int) (int, bool)",
//	}
//
// ParseResult groups the symbols, imports and non-fatal parse errors of one
// file. Methods and fields carry the owning type in Receiver, so
// Symbol.Key() yields "Calculator.Add" style identifiers.
//
// # Validation
//
//	if err := symbol.Validate(); err != nil {
//	    return err
//	}
//
// Validation errors wrap the sentinels in errors.go and can be matched with
// errors.Is.
package types
