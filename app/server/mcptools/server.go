package mcptools

import (
	"context"
	"encoding/json"

	"soccerscout/app/service/analysis"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/predictor"
	"soccerscout/app/service/report"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

// Server exposes player search, reports and projections as MCP tools over
// stdio, so LLM clients can drive the scout directly.
type Server struct {
	matcherSvc   *matcher.Service
	analysisSvc  *analysis.Service
	predictorSvc *predictor.Service
	reportSvc    *report.Service

	mcpServer *server.MCPServer
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		matcherSvc:   do.MustInvoke[*matcher.Service](di),
		analysisSvc:  do.MustInvoke[*analysis.Service](di),
		predictorSvc: do.MustInvoke[*predictor.Service](di),
		reportSvc:    do.MustInvoke[*report.Service](di),
	}

	s.mcpServer = server.NewMCPServer("soccerscout", "1.0.0")
	s.registerTools()

	return s, nil
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("player_search",
			mcp.WithDescription("Search football players by name. Returns candidates with id, display name, affiliation and confidence."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Free-text player name")),
		),
		s.handleSearch,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("player_report",
			mcp.WithDescription("Produce a performance report for a player found via player_search."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Candidate id")),
		),
		s.handleReport,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("player_potential",
			mcp.WithDescription("Project a player's performance over the coming seasons."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Candidate id")),
			mcp.WithNumber("years", mcp.Description("Seasons to project, default 3")),
		),
		s.handlePotential,
	)
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	candidates, err := s.matcherSvc.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, _ := json.Marshal(candidates)

	return mcp.NewToolResultText(string(result)), nil
}

func (s *Server) handleReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	candidate, err := s.resolveCandidate(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := s.reportSvc.Generate(ctx, candidate)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body, err := s.reportSvc.Render(ctx, data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(body), nil
}

func (s *Server) handlePotential(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	years := int(request.GetFloat("years", 3))

	entry, err := s.matcherSvc.Entry(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	career, err := s.analysisSvc.CareerPerformance(ctx, entry)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	potential, err := s.predictorSvc.PredictPotential(career, 0, years)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, _ := json.Marshal(potential)

	return mcp.NewToolResultText(string(result)), nil
}

func (s *Server) resolveCandidate(ctx context.Context, request mcp.CallToolRequest) (matcher.Candidate, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return matcher.Candidate{}, err
	}

	entry, err := s.matcherSvc.Entry(ctx, id)
	if err != nil {
		return matcher.Candidate{}, err
	}

	return matcher.Candidate{
		ID:          id,
		DisplayName: entry.DisplayName(),
		Affiliation: entry.TeamName,
		Confidence:  1.0,
	}, nil
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
