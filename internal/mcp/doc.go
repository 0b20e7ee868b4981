// Package mcp implements the Model Context Protocol (MCP) server for the
// sample fixture.
//
// The server exposes the fixture's operations, plus the symbol extractor that
// consumes it, as MCP tools:
//   - calculate_sum: sum a sequence of integers
//   - find_max: largest integer, with an explicit found flag
//   - validate_email: '@' present and a '.' after the last '@'
//   - check_user: display name and validity of a user record
//   - calculate: chain add/subtract operations on a fresh accumulator
//   - list_symbols: parse a directory of Go files and list its symbols
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout carries protocol messages only; logs go to stderr.
//
// # Tool: calculate
//
//	Request:
//	{
//	  "name": "calculate",
//	  "arguments": {
//	    "operations": [
//	      {"op": "add", "value": 5},
//	      {"op": "subtract", "value": 2},
//	      {"op": "add", "value": 1}
//	    ]
//	  }
//	}
//
//	Response:
//	{
//	  "result": 4,
//	  "steps": 3
//	}
//
// # Tool: find_max
//
// An empty sequence is a valid input, not an error:
//
//	{"name": "find_max", "arguments": {"numbers": []}}
//	→ {"found": false}
//
// # Tool: list_symbols
//
//	Request:
//	{
//	  "name": "list_symbols",
//	  "arguments": {"path": "/abs/path/pkg/sample", "include_tests": false}
//	}
//
//	Response:
//	{
//	  "path": "/abs/path/pkg/sample",
//	  "file_count": 5,
//	  "symbol_count": 16,
//	  "files": [
//	    {"file": "calculator.go", "package": "sample", "symbols": [...]}
//	  ]
//	}
//
// # Error Handling
//
// Handlers return *MCPError with JSON-RPC style codes:
//
//	-32602  invalid or missing parameter (non-integral numbers included)
//	-32603  internal error while parsing
//	-32001  path does not exist
//	-32005  unknown calculator operation
//
// The Data field names the offending parameter where one exists.
package mcp
