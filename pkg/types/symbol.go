package types

import (
	"fmt"
	"go/token"
)

// SymbolKind represents the type of Go language symbol
type SymbolKind string

const (
	KindFunction  SymbolKind = "function"
	KindMethod    SymbolKind = "method"
	KindStruct    SymbolKind = "struct"
	KindInterface SymbolKind = "interface"
	KindType      SymbolKind = "type"
	KindConst     SymbolKind = "const"
	KindVar       SymbolKind = "var"
	KindField     SymbolKind = "field"
)

// SymbolScope represents the visibility scope of a symbol
type SymbolScope string

const (
	ScopeExported   SymbolScope = "exported"
	ScopeUnexported SymbolScope = "unexported"
)

// Position represents a location in source code
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Symbol represents a declaration extracted from Go source via AST parsing
type Symbol struct {
	// Identification
	Name    string     `json:"name"`
	Kind    SymbolKind `json:"kind"`
	Package string     `json:"package"`

	// Content
	Signature  string `json:"signature,omitempty"`
	DocComment string `json:"doc_comment,omitempty"`

	// Scope
	Scope    SymbolScope `json:"scope"`
	Receiver string      `json:"receiver,omitempty"` // methods: receiver type, fields: owning struct

	// Location
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// ValidateKind checks if the symbol kind is valid
func (s *Symbol) ValidateKind() error {
	switch s.Kind {
	case KindFunction, KindMethod, KindStruct, KindInterface, KindType, KindConst, KindVar, KindField:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, s.Kind)
	}
}

// ValidateScope checks if the symbol scope is valid
func (s *Symbol) ValidateScope() error {
	switch s.Scope {
	case ScopeExported, ScopeUnexported:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScope, s.Scope)
	}
}

// IsExported returns true if the symbol is visible outside its package
func (s *Symbol) IsExported() bool {
	return s.Scope == ScopeExported && token.IsExported(s.Name)
}

// HasReceiver reports whether the kind carries a receiver/owner type
func (k SymbolKind) HasReceiver() bool {
	return k == KindMethod || k == KindField
}

// Validate performs comprehensive validation of the symbol
func (s *Symbol) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}

	if err := s.ValidateKind(); err != nil {
		return err
	}

	if err := s.ValidateScope(); err != nil {
		return err
	}

	if s.Package == "" {
		return ErrMissingPackage
	}

	if s.Kind.HasReceiver() && s.Receiver == "" {
		return ErrMissingReceiver
	}
	if !s.Kind.HasReceiver() && s.Receiver != "" {
		return ErrUnexpectedReceiver
	}

	if s.Start.Line <= 0 || s.End.Line <= 0 {
		return fmt.Errorf("%w: line numbers must be positive", ErrInvalidPosition)
	}
	if s.Start.Line > s.End.Line {
		return fmt.Errorf("%w: start line must be before or equal to end line", ErrInvalidPosition)
	}

	return nil
}

// Key returns a stable identifier for the symbol within its package,
// "Receiver.Name" for methods and fields and "Name" otherwise
func (s *Symbol) Key() string {
	if s.Receiver != "" {
		return s.Receiver + "." + s.Name
	}
	return s.Name
}
