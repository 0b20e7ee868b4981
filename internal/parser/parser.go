package parser

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/gocontext-fixtures/pkg/types"
)

// Parser handles AST-based parsing of Go source files
type Parser struct {
	fset    *token.FileSet
	workers int
}

// New creates a new Parser that parses directories with one worker per CPU
func New() *Parser {
	return NewWithWorkers(runtime.NumCPU())
}

// NewWithWorkers creates a Parser whose ParseDir runs at most workers files at once
func NewWithWorkers(workers int) *Parser {
	if workers < 1 {
		workers = 1
	}
	return &Parser{
		fset:    token.NewFileSet(),
		workers: workers,
	}
}

// ParseFile reads and parses a Go source file
func (p *Parser) ParseFile(filePath string) (*types.ParseResult, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return p.ParseSource(filePath, content), nil
}

// ParseSource parses in-memory Go source. Syntax errors never fail the call;
// they are recorded on the result and whatever partial AST the Go parser
// produced is still walked.
func (p *Parser) ParseSource(filePath string, src []byte) *types.ParseResult {
	result := &types.ParseResult{File: filePath}

	file, err := parser.ParseFile(p.fset, filePath, src, parser.ParseComments)
	if err != nil {
		p.recordSyntaxError(result, filePath, err)
	}
	if file == nil {
		return result
	}

	if file.Name != nil {
		result.PackageName = file.Name.Name
	}
	result.Imports = extractImports(file)

	extractor := &symbolExtractor{
		fset:        p.fset,
		packageName: result.PackageName,
		symbols:     make([]types.Symbol, 0, len(file.Decls)),
	}
	for _, decl := range file.Decls {
		extractor.visitDecl(decl)
	}
	result.Symbols = extractor.symbols

	return result
}

// ParseDir parses the .go files directly inside dir concurrently.
// Results come back ordered by file name. A file that cannot be read aborts
// the whole call; syntax errors do not.
func (p *Parser) ParseDir(ctx context.Context, dir string, includeTests bool) ([]*types.ParseResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	results := make([]*types.ParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.ParseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Parser) recordSyntaxError(result *types.ParseResult, filePath string, err error) {
	var list scanner.ErrorList
	if errors.As(err, &list) && list.Len() > 0 {
		for _, e := range list {
			result.AddError(filePath, e.Pos.Line, e.Pos.Column, "syntax error: "+e.Msg)
		}
		return
	}
	result.AddError(filePath, 0, 0, fmt.Sprintf("syntax error: %v", err))
}

// Lookup returns the symbol with the given name and receiver ("" for
// package-level declarations) from a parse result
func Lookup(result *types.ParseResult, name, receiver string) (types.Symbol, bool) {
	for _, sym := range result.Symbols {
		if sym.Name == name && sym.Receiver == receiver {
			return sym, true
		}
	}
	return types.Symbol{}, false
}

func extractImports(file *ast.File) []types.Import {
	imports := make([]types.Import, 0, len(file.Imports))
	for _, imp := range file.Imports {
		spec := types.Import{Path: strings.Trim(imp.Path.Value, "\"`")}
		if imp.Name != nil {
			spec.Alias = imp.Name.Name
		}
		imports = append(imports, spec)
	}
	return imports
}

// symbolExtractor collects top-level declarations of one file
type symbolExtractor struct {
	fset        *token.FileSet
	packageName string
	symbols     []types.Symbol
}

func (e *symbolExtractor) visitDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		e.extractFunction(d)
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				e.extractTypeSpec(s, specDoc(d, s.Doc))
			case *ast.ValueSpec:
				e.extractValueSpec(s, specDoc(d, s.Doc), d.Tok)
			}
		}
	}
}

// specDoc prefers the spec's own comment and falls back to the declaration's
// comment for ungrouped declarations like "type User struct".
func specDoc(decl *ast.GenDecl, doc *ast.CommentGroup) *ast.CommentGroup {
	if doc != nil {
		return doc
	}
	if !decl.Lparen.IsValid() {
		return decl.Doc
	}
	return nil
}

func (e *symbolExtractor) newSymbol(name string, kind types.SymbolKind, doc *ast.CommentGroup, node ast.Node) types.Symbol {
	return types.Symbol{
		Name:       name,
		Kind:       kind,
		Package:    e.packageName,
		DocComment: docText(doc),
		Scope:      scopeOf(name),
		Start:      e.position(node.Pos()),
		End:        e.position(node.End()),
	}
}

func (e *symbolExtractor) extractFunction(fn *ast.FuncDecl) {
	kind := types.KindFunction
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		kind = types.KindMethod
	}

	sym := e.newSymbol(fn.Name.Name, kind, fn.Doc, fn)
	if kind == types.KindMethod {
		sym.Receiver = receiverTypeName(fn.Recv.List[0].Type)
	}
	sym.Signature = functionSignature(fn)

	e.symbols = append(e.symbols, sym)
}

func (e *symbolExtractor) extractTypeSpec(ts *ast.TypeSpec, doc *ast.CommentGroup) {
	name := ts.Name.Name

	switch t := ts.Type.(type) {
	case *ast.StructType:
		sym := e.newSymbol(name, types.KindStruct, doc, ts)
		sym.Signature = fmt.Sprintf("type %s struct { ... } // %d fields", name, t.Fields.NumFields())
		e.symbols = append(e.symbols, sym)
		e.extractFields(name, t)
	case *ast.InterfaceType:
		sym := e.newSymbol(name, types.KindInterface, doc, ts)
		sym.Signature = fmt.Sprintf("type %s interface { ... } // %d methods", name, t.Methods.NumFields())
		e.symbols = append(e.symbols, sym)
	default:
		sym := e.newSymbol(name, types.KindType, doc, ts)
		if ts.Assign.IsValid() {
			sym.Signature = fmt.Sprintf("type %s = %s", name, exprString(ts.Type))
		} else {
			sym.Signature = fmt.Sprintf("type %s %s", name, exprString(ts.Type))
		}
		e.symbols = append(e.symbols, sym)
	}
}

func (e *symbolExtractor) extractFields(structName string, st *ast.StructType) {
	if st.Fields == nil {
		return
	}

	for _, field := range st.Fields.List {
		typ := exprString(field.Type)
		names := field.Names
		if len(names) == 0 {
			// embedded field: the type name doubles as the field name
			embedded := strings.TrimPrefix(typ, "*")
			if dot := strings.LastIndex(embedded, "."); dot >= 0 {
				embedded = embedded[dot+1:]
			}
			names = []*ast.Ident{{Name: embedded}}
		}
		for _, name := range names {
			sym := e.newSymbol(name.Name, types.KindField, field.Doc, field)
			sym.Receiver = structName
			sym.Signature = fmt.Sprintf("%s %s", name.Name, typ)
			e.symbols = append(e.symbols, sym)
		}
	}
}

func (e *symbolExtractor) extractValueSpec(vs *ast.ValueSpec, doc *ast.CommentGroup, tok token.Token) {
	kind := types.KindVar
	if tok == token.CONST {
		kind = types.KindConst
	}

	for _, name := range vs.Names {
		if name.Name == "_" {
			continue
		}
		sym := e.newSymbol(name.Name, kind, doc, vs)
		switch {
		case vs.Type != nil:
			sym.Signature = fmt.Sprintf("%s %s", name.Name, exprString(vs.Type))
		case len(vs.Values) > 0:
			sym.Signature = fmt.Sprintf("%s = ...", name.Name)
		default:
			sym.Signature = name.Name
		}
		e.symbols = append(e.symbols, sym)
	}
}

func (e *symbolExtractor) position(pos token.Pos) types.Position {
	p := e.fset.Position(pos)
	return types.Position{Line: p.Line, Column: p.Column}
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	}
	return ""
}

func functionSignature(fn *ast.FuncDecl) string {
	var sig strings.Builder
	sig.WriteString("func ")

	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		sig.WriteString("(")
		sig.WriteString(fieldListString(fn.Recv))
		sig.WriteString(") ")
	}

	sig.WriteString(fn.Name.Name)
	sig.WriteString("(")
	sig.WriteString(fieldListString(fn.Type.Params))
	sig.WriteString(")")

	if results := fn.Type.Results; results != nil && len(results.List) > 0 {
		out := fieldListString(results)
		if results.NumFields() > 1 || len(results.List[0].Names) > 0 {
			out = "(" + out + ")"
		}
		sig.WriteString(" ")
		sig.WriteString(out)
	}

	return sig.String()
}

// fieldListString renders "a, b int, c string" style parameter lists
func fieldListString(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fl.List))
	for _, field := range fl.List {
		typ := exprString(field.Type)
		if len(field.Names) == 0 {
			parts = append(parts, typ)
			continue
		}
		names := make([]string, len(field.Names))
		for i, n := range field.Names {
			names[i] = n.Name
		}
		parts = append(parts, strings.Join(names, ", ")+" "+typ)
	}
	return strings.Join(parts, ", ")
}

func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case nil:
		return ""
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.ArrayType:
		if t.Len != nil {
			return "[" + exprString(t.Len) + "]" + exprString(t.Elt)
		}
		return "[]" + exprString(t.Elt)
	case *ast.BasicLit:
		return t.Value
	case *ast.MapType:
		return "map[" + exprString(t.Key) + "]" + exprString(t.Value)
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return "chan<- " + exprString(t.Value)
		case ast.RECV:
			return "<-chan " + exprString(t.Value)
		}
		return "chan " + exprString(t.Value)
	case *ast.FuncType:
		s := "func(" + fieldListString(t.Params) + ")"
		if t.Results != nil && len(t.Results.List) > 0 {
			out := fieldListString(t.Results)
			if t.Results.NumFields() > 1 || len(t.Results.List[0].Names) > 0 {
				out = "(" + out + ")"
			}
			s += " " + out
		}
		return s
	case *ast.InterfaceType:
		if t.Methods.NumFields() == 0 {
			return "interface{}"
		}
		return "interface{ ... }"
	case *ast.StructType:
		if t.Fields.NumFields() == 0 {
			return "struct{}"
		}
		return "struct{ ... }"
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	case *ast.Ellipsis:
		return "..." + exprString(t.Elt)
	case *ast.IndexExpr:
		return exprString(t.X) + "[" + exprString(t.Index) + "]"
	case *ast.IndexListExpr:
		args := make([]string, len(t.Indices))
		for i, idx := range t.Indices {
			args[i] = exprString(idx)
		}
		return exprString(t.X) + "[" + strings.Join(args, ", ") + "]"
	case *ast.ParenExpr:
		return "(" + exprString(t.X) + ")"
	default:
		return "..."
	}
}

func docText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}

func scopeOf(name string) types.SymbolScope {
	if token.IsExported(name) {
		return types.ScopeExported
	}
	return types.ScopeUnexported
}
