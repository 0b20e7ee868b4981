package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/gocontext-fixtures/pkg/sample"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodePathNotFound     = -32001 // Specified path does not exist
	ErrorCodeUnknownOperation = -32005 // Calculator operation is not add or subtract
)

// Calculator operations accepted by the calculate tool
const (
	opAdd      = "add"
	opSubtract = "subtract"
)

// handleCalculateSum handles the calculate_sum tool invocation
func (s *Server) handleCalculateSum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	numbers, err := getIntSlice(args, "numbers")
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]interface{}{
		"sum": sample.CalculateSum(numbers),
	}), nil
}

// handleFindMax handles the find_max tool invocation
func (s *Server) handleFindMax(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	numbers, err := getIntSlice(args, "numbers")
	if err != nil {
		return nil, err
	}

	response := map[string]interface{}{"found": false}
	if largest, ok := sample.FindMax(numbers); ok {
		response["found"] = true
		response["max"] = largest
	}
	return jsonResult(response), nil
}

// handleValidateEmail handles the validate_email tool invocation
func (s *Server) handleValidateEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	email, err := getString(args, "email")
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]interface{}{
		"email": email,
		"valid": sample.ValidateEmail(email),
	}), nil
}

// handleCheckUser handles the check_user tool invocation
func (s *Server) handleCheckUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	id, err := getInt(args, "id")
	if err != nil {
		return nil, err
	}
	name, err := getString(args, "name")
	if err != nil {
		return nil, err
	}
	email, err := getString(args, "email")
	if err != nil {
		return nil, err
	}

	user := sample.NewUser(int64(id), name, email)

	return jsonResult(map[string]interface{}{
		"id":                 user.ID,
		"display_name":       user.DisplayName(),
		"valid":              user.IsValid(),
		"email_format_valid": sample.ValidateEmail(user.Email),
	}), nil
}

// handleCalculate handles the calculate tool invocation
func (s *Server) handleCalculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	raw, ok := args["operations"].([]interface{})
	if !ok {
		return nil, invalidParam("operations", "missing or not an array")
	}

	calc := sample.NewCalculator()
	for i, item := range raw {
		step, ok := item.(map[string]interface{})
		if !ok {
			return nil, invalidParam(fmt.Sprintf("operations[%d]", i), "not an object")
		}

		op, ok := step["op"].(string)
		if !ok {
			return nil, invalidParam(fmt.Sprintf("operations[%d].op", i), "missing or not a string")
		}
		value, ok := toInt(step["value"])
		if !ok {
			return nil, invalidParam(fmt.Sprintf("operations[%d].value", i), "missing or not an integer")
		}

		switch op {
		case opAdd:
			calc.Add(value)
		case opSubtract:
			calc.Subtract(value)
		default:
			return nil, newMCPError(ErrorCodeUnknownOperation, "unknown operation", map[string]interface{}{
				"index":   i,
				"op":      op,
				"allowed": []string{opAdd, opSubtract},
			})
		}
	}

	return jsonResult(map[string]interface{}{
		"result": calc.Result(),
		"steps":  len(raw),
	}), nil
}

// handleListSymbols handles the list_symbols tool invocation
func (s *Server) handleListSymbols(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := arguments(request)
	if err != nil {
		return nil, err
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, invalidParam("path", "missing or empty")
	}

	if err := validatePath(path); err != nil {
		code := ErrorCodeInvalidParams
		if errors.Is(err, ErrPathNotFound) {
			code = ErrorCodePathNotFound
		}
		return nil, newMCPError(code, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	includeTests := getBoolDefault(args, "include_tests", false)

	results, err := s.parser.ParseDir(ctx, path, includeTests)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "parsing failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	files := make([]map[string]interface{}, 0, len(results))
	symbolCount := 0
	for _, res := range results {
		rel, relErr := filepath.Rel(path, res.File)
		if relErr != nil {
			rel = res.File
		}
		entry := map[string]interface{}{
			"file":    rel,
			"package": res.PackageName,
			"symbols": res.Symbols,
		}
		if res.HasErrors() {
			entry["errors"] = res.Errors
		}
		files = append(files, entry)
		symbolCount += len(res.Symbols)
	}

	return jsonResult(map[string]interface{}{
		"path":         path,
		"files":        files,
		"file_count":   len(files),
		"symbol_count": symbolCount,
	}), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func invalidParam(param, reason string) error {
	return newMCPError(ErrorCodeInvalidParams, "invalid parameter: "+param, map[string]interface{}{
		"param":  param,
		"reason": reason,
	})
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// errorResult renders a handler error as a tool result with isError set.
// mcp-go reports any returned error as -32603 and drops its data, so the
// code, message and data travel in the result text instead.
func errorResult(err error) *mcp.CallToolResult {
	var mcpErr *MCPError
	if !errors.As(err, &mcpErr) {
		mcpErr = &MCPError{Code: ErrorCodeInternalError, Message: err.Error()}
	}

	body := map[string]interface{}{
		"code":    mcpErr.Code,
		"message": mcpErr.Message,
	}
	if mcpErr.Data != nil {
		body["data"] = mcpErr.Data
	}
	return mcp.NewToolResultError(formatJSON(map[string]interface{}{"error": body}))
}

func arguments(request mcp.CallToolRequest) (map[string]interface{}, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	return args, nil
}

// validatePath checks that path is an absolute, readable directory holding Go files
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if !info.IsDir() {
		return ErrNotDirectory
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return ErrPathNotReadable
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			return nil
		}
	}

	return ErrNoGoFiles
}

// jsonResult wraps an indented JSON document in a text tool result
func jsonResult(data map[string]interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultText(formatJSON(data))
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getString extracts a required string parameter; the empty string is allowed
func getString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key].(string)
	if !ok {
		return "", invalidParam(key, "missing or not a string")
	}
	return val, nil
}

// getInt extracts a required integral number
func getInt(args map[string]interface{}, key string) (int, error) {
	val, ok := toInt(args[key])
	if !ok {
		return 0, invalidParam(key, "missing or not an integer")
	}
	return val, nil
}

// getIntSlice extracts a required array of integers; an empty array is valid
func getIntSlice(args map[string]interface{}, key string) ([]int, error) {
	switch raw := args[key].(type) {
	case []int:
		return raw, nil
	case []interface{}:
		out := make([]int, len(raw))
		for i, item := range raw {
			n, ok := toInt(item)
			if !ok {
				return nil, invalidParam(fmt.Sprintf("%s[%d]", key, i), "not an integer")
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, invalidParam(key, "missing or not an array")
	}
}

// toInt converts a decoded JSON number to int. JSON numbers arrive as
// float64, so fractional values and values outside the int range are rejected.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int64ToInt(n)
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64ToInt(int64(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int64ToInt(i)
	default:
		return 0, false
	}
}

// int64ToInt narrows n, failing when int is 32 bits wide and n does not fit
func int64ToInt(n int64) (int, bool) {
	if n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
	ErrNoGoFiles       = errors.New("directory does not contain Go files")
)
