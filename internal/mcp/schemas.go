package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func numbersProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Sequence of integers (may be empty)",
		"items": map[string]interface{}{
			"type": "integer",
		},
	}
}

// calculateSumTool returns the tool definition for calculate_sum
func calculateSumTool() mcp.Tool {
	return mcp.Tool{
		Name:        "calculate_sum",
		Description: "Sum a sequence of integers; an empty sequence sums to 0",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"numbers": numbersProperty(),
			},
			Required: []string{"numbers"},
		},
	}
}

// findMaxTool returns the tool definition for find_max
func findMaxTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_max",
		Description: "Find the largest integer in a sequence; reports found=false for an empty sequence",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"numbers": numbersProperty(),
			},
			Required: []string{"numbers"},
		},
	}
}

// validateEmailTool returns the tool definition for validate_email
func validateEmailTool() mcp.Tool {
	return mcp.Tool{
		Name:        "validate_email",
		Description: "Check that text contains '@' and that the part after the last '@' contains '.'",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"email": map[string]interface{}{
					"type":        "string",
					"description": "Text to check",
				},
			},
			Required: []string{"email"},
		},
	}
}

// checkUserTool returns the tool definition for check_user
func checkUserTool() mcp.Tool {
	return mcp.Tool{
		Name:        "check_user",
		Description: "Build a user record and report its display name and validity",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "User identifier",
				},
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Display name (an empty name makes the user invalid)",
				},
				"email": map[string]interface{}{
					"type":        "string",
					"description": "Email address",
				},
			},
			Required: []string{"id", "name", "email"},
		},
	}
}

// calculateTool returns the tool definition for calculate
func calculateTool() mcp.Tool {
	return mcp.Tool{
		Name:        "calculate",
		Description: "Apply a chain of add/subtract operations to a fresh accumulator starting at 0",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"operations": map[string]interface{}{
					"type":        "array",
					"description": "Operations applied in order",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"op": map[string]interface{}{
								"type": "string",
								"enum": []string{opAdd, opSubtract},
							},
							"value": map[string]interface{}{
								"type": "integer",
							},
						},
						"required": []string{"op", "value"},
					},
				},
			},
			Required: []string{"operations"},
		},
	}
}

// listSymbolsTool returns the tool definition for list_symbols
func listSymbolsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_symbols",
		Description: "Parse the Go files of one directory and list their top-level symbols",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a directory containing .go files",
				},
				"include_tests": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, parse *_test.go files as well",
					"default":     false,
				},
			},
			Required: []string{"path"},
		},
	}
}
