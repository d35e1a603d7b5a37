// Command scheme-mcp serves the interpreter as MCP tools over stdio.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/alttpo/scheme"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var ip = scheme.DefaultInterpreter

func handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := ip.Run(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleParse echoes the canonical form of the datum without evaluating it.
// Quote shorthand is shown as (quote x).
func handleParse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	n, err := ip.Parse(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := scheme.RenderDatum(n)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func newServer() *server.MCPServer {
	s := server.NewMCPServer(
		"scheme",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("scheme_eval",
			mcp.WithDescription("Evaluate one s-expression against the built-in forms and return its canonical text."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("S-expression to evaluate, e.g. (list-ref (list 10 20 30) 1)"),
			),
		),
		handleEval,
	)

	s.AddTool(
		mcp.NewTool("scheme_parse",
			mcp.WithDescription("Parse one s-expression without evaluating it and return its canonical text."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("S-expression to parse"),
			),
		),
		handleParse,
	)

	return s
}

func main() {
	configPath := flag.String("config", "", "YAML `file` with max_read_depth and max_eval_depth")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	if *configPath != "" {
		c, err := scheme.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		ip = scheme.NewInterpreter(c)
		log.Printf("loaded config %s: %+v", *configPath, c)
	}

	if err := server.ServeStdio(newServer()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
