package mcp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/dshills/gocontext-fixtures/internal/config"
	"github.com/dshills/gocontext-fixtures/internal/parser"
)

// toolHandler is the signature mcp-go expects for tool callbacks
type toolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	parser *parser.Parser
	logger *zap.Logger
}

// NewServer creates a new MCP server instance with every tool registered
func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		mcp:    server.NewMCPServer(cfg.Server.Name, cfg.Server.Version),
		parser: parser.NewWithWorkers(cfg.Parser.Workers),
		logger: logger.Named("mcp"),
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until the client
// disconnects or ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

type registeredTool struct {
	tool    mcp.Tool
	handler toolHandler
}

func (s *Server) tools() []registeredTool {
	return []registeredTool{
		{calculateSumTool(), s.handleCalculateSum},
		{findMaxTool(), s.handleFindMax},
		{validateEmailTool(), s.handleValidateEmail},
		{checkUserTool(), s.handleCheckUser},
		{calculateTool(), s.handleCalculate},
		{listSymbolsTool(), s.handleListSymbols},
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	seen := make(map[string]bool)
	for _, rt := range s.tools() {
		if seen[rt.tool.Name] {
			return fmt.Errorf("duplicate tool %q", rt.tool.Name)
		}
		seen[rt.tool.Name] = true
		s.mcp.AddTool(rt.tool, server.ToolHandlerFunc(s.logged(rt.tool.Name, rt.handler)))
	}
	return nil
}

// logged records the outcome and latency of each tool call and turns
// handler errors into error results
func (s *Server) logged(name string, next toolHandler) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, request)

		fields := []zap.Field{
			zap.String("tool", name),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			s.logger.Warn("tool call failed", append(fields, zap.Error(err))...)
			return errorResult(err), nil
		}
		s.logger.Debug("tool call", fields...)
		return result, nil
	}
}
