package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSymbol() Symbol {
	return Symbol{
		Name:    "CalculateSum",
		Kind:    KindFunction,
		Package: "sample",
		Scope:   ScopeExported,
		Start:   Position{Line: 3, Column: 1},
		End:     Position{Line: 9, Column: 2},
	}
}

func TestSymbol_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Symbol)
		wantErr error
	}{
		{"valid function", func(s *Symbol) {}, nil},
		{"missing name", func(s *Symbol) { s.Name = "" }, ErrMissingName},
		{"bad kind", func(s *Symbol) { s.Kind = "class" }, ErrInvalidKind},
		{"bad scope", func(s *Symbol) { s.Scope = "package_local" }, ErrInvalidScope},
		{"missing package", func(s *Symbol) { s.Package = "" }, ErrMissingPackage},
		{"method without receiver", func(s *Symbol) { s.Kind = KindMethod }, ErrMissingReceiver},
		{"field without owner", func(s *Symbol) { s.Kind = KindField }, ErrMissingReceiver},
		{"function with receiver", func(s *Symbol) { s.Receiver = "Calculator" }, ErrUnexpectedReceiver},
		{"zero line", func(s *Symbol) { s.Start.Line = 0 }, ErrInvalidPosition},
		{"reversed lines", func(s *Symbol) { s.Start.Line = 20 }, ErrInvalidPosition},
		{"valid method", func(s *Symbol) { s.Kind = KindMethod; s.Receiver = "Calculator" }, nil},
		{"valid field", func(s *Symbol) { s.Kind = KindField; s.Receiver = "User" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := validSymbol()
			tt.mutate(&sym)

			err := sym.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSymbol_IsExported(t *testing.T) {
	sym := validSymbol()
	assert.True(t, sym.IsExported())

	sym.Name = "result"
	sym.Scope = ScopeUnexported
	assert.False(t, sym.IsExported())
}

func TestSymbol_Key(t *testing.T) {
	sym := validSymbol()
	assert.Equal(t, "CalculateSum", sym.Key())

	sym.Name = "Add"
	sym.Kind = KindMethod
	sym.Receiver = "Calculator"
	assert.Equal(t, "Calculator.Add", sym.Key())
}

func TestParseResult_Errors(t *testing.T) {
	var pr ParseResult
	assert.False(t, pr.HasErrors())

	pr.AddError("user.go", 3, 7, "syntax error: expected ')'")
	assert.True(t, pr.HasErrors())
	assert.Equal(t, "syntax error: expected ')'", pr.Errors[0].Error())
}

func TestParseResult_SymbolsOfKind(t *testing.T) {
	pr := ParseResult{Symbols: []Symbol{
		{Name: "User", Kind: KindStruct},
		{Name: "NewUser", Kind: KindFunction},
		{Name: "FindMax", Kind: KindFunction},
	}}

	funcs := pr.SymbolsOfKind(KindFunction)
	assert.Len(t, funcs, 2)
	assert.Equal(t, "NewUser", funcs[0].Name)
	assert.Empty(t, pr.SymbolsOfKind(KindInterface))
}
