// Package mcptool exposes check_soundness and prove_composite as MCP
// tools, so an agent host can call the verifier without linking the
// Go package directly.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/soundness"
	"github.com/dock-labs/rdf2020soundness/term"
)

// Server wraps a soundness.Driver and exposes it via the Model Context
// Protocol over stdio.
type Server struct {
	driver *soundness.Driver
	rules  []rule.Rule
	mcp    *server.MCPServer
}

// New builds an MCP server backed by driver, saturating against rules
// whenever a tool call references the current rule set.
func New(driver *soundness.Driver, rules []rule.Rule) *Server {
	s := &Server{
		driver: driver,
		rules:  rules,
		mcp: server.NewMCPServer(
			"rdf2020soundness",
			"1.0.0",
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// SetRules replaces the rule set tool calls saturate against, e.g.
// after a watch.Watcher reload.
func (s *Server) SetRules(rules []rule.Rule) {
	s.rules = rules
}

func (s *Server) registerTools() {
	checkTool := mcp.NewTool("check_soundness",
		mcp.WithDescription("Verify a presentation's signature and validate its attached composite-claim proof"),
		mcp.WithString("presentation",
			mcp.Required(),
			mcp.Description("The verifiable presentation, as raw JSON"),
		),
	)
	s.mcp.AddTool(checkTool, s.handleCheckSoundness)

	proveTool := mcp.NewTool("prove_composite",
		mcp.WithDescription("Saturate a presentation's claim graph against the rule set toward a set of goal triples"),
		mcp.WithString("presentation",
			mcp.Required(),
			mcp.Description("The verifiable presentation, as raw JSON"),
		),
		mcp.WithString("goals",
			mcp.Required(),
			mcp.Description("JSON array of goal triples to prove"),
		),
	)
	s.mcp.AddTool(proveTool, s.handleProveComposite)
}

func (s *Server) handleCheckSoundness(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	presentation, err := request.RequireString("presentation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	accepted, err := s.driver.CheckSoundness([]byte(presentation), s.rules)
	if err != nil {
		return mcp.NewToolResultError(describeError(err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("accepted %d triples", accepted.Len())), nil
}

func (s *Server) handleProveComposite(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	presentation, err := request.RequireString("presentation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	goalsJSON, err := request.RequireString("goals")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var triples []term.Triple
	if err := json.Unmarshal([]byte(goalsJSON), &triples); err != nil {
		return mcp.NewToolResultError(errors.Wrap(err, "parse goals").Error()), nil
	}
	goals := term.NewClaimGraph(triples...)

	witness, err := s.driver.ProveComposite([]byte(presentation), goals, s.rules)
	if err != nil {
		return mcp.NewToolResultError(describeError(err)), nil
	}

	data, err := json.Marshal(witness)
	if err != nil {
		return mcp.NewToolResultError(errors.Wrap(err, "marshal witness").Error()), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func describeError(err error) string {
	return fmt.Sprintf("%s: %s", errors.KindOf(err), err.Error())
}

// Serve runs the MCP server over stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
