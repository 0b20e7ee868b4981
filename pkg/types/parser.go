package types

// ParseResult represents the output of parsing a Go source file
type ParseResult struct {
	File string `json:"file"`

	// Extracted data
	Symbols     []Symbol `json:"symbols"`
	Imports     []Import `json:"imports"`
	PackageName string   `json:"package"`

	// Errors encountered during parsing
	Errors []ParseError `json:"errors,omitempty"`
}

// Import represents an import statement in a Go file
type Import struct {
	Path  string `json:"path"`            // Import path (e.g., "github.com/pkg/errors")
	Alias string `json:"alias,omitempty"` // Import alias if present (e.g., ".")
}

// ParseError represents an error that occurred during parsing
type ParseError struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	return pe.Message
}

// HasErrors returns true if any parsing errors occurred
func (pr *ParseResult) HasErrors() bool {
	return len(pr.Errors) > 0
}

// AddError adds a parsing error to the result
func (pr *ParseResult) AddError(file string, line, col int, msg string) {
	pr.Errors = append(pr.Errors, ParseError{
		File:    file,
		Line:    line,
		Column:  col,
		Message: msg,
	})
}

// SymbolsOfKind returns the symbols with the given kind, in source order
func (pr *ParseResult) SymbolsOfKind(kind SymbolKind) []Symbol {
	var out []Symbol
	for _, sym := range pr.Symbols {
		if sym.Kind == kind {
			out = append(out, sym)
		}
	}
	return out
}
