package agents

import (
	"context"
	"fmt"

	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/tools"
)

// RoleAnalyzer is the role name for the data analysis agent.
const RoleAnalyzer = "analyzer"

func init() {
	agent.RegisterRole(RoleAnalyzer, func(def agent.Def, _ *agent.Manager) (*agent.Agent, error) {
		return NewAnalyzer(defName(def, "Analyzer")), nil
	})
}

// NewAnalyzer creates the data analysis agent. It answers QUERY messages
// whose payload carries a numeric series under "data" and an analysis type
// under "type": "statistics", "patterns", "trend", or "full" (the default,
// running all three).
func NewAnalyzer(name string) *agent.Agent {
	return agent.New(name, "Data Analysis and Pattern Detection",
		agent.WithTools(
			tools.AnalyzeDataTool(),
			tools.FindPatternsTool(),
			tools.PredictTrendTool(),
		),
		agent.WithHandler(agent.HandlerFunc(handleAnalysisQuery)),
	)
}

func handleAnalysisQuery(ctx context.Context, a *agent.Agent, msg *agent.Message) (*agent.Message, error) {
	if msg.Type != agent.TypeQuery {
		return nil, nil
	}

	series := msg.Data["data"]
	analysisType := stringField(msg.Data, "type", "full")

	response := make(map[string]any)
	run := func(key, tool string, args agent.Args) error {
		result, err := a.UseTool(tool, args)
		if err != nil {
			return err
		}
		response[key] = result
		return nil
	}

	var err error
	switch analysisType {
	case "full":
		if err = run("statistics", "analyze_data", agent.Args{"data": series}); err == nil {
			if err = run("patterns", "find_patterns", agent.Args{"data": series}); err == nil {
				err = run("trend", "predict_trend", agent.Args{"historical_data": series})
			}
		}
	case "statistics":
		err = run("statistics", "analyze_data", agent.Args{"data": series})
	case "patterns":
		err = run("patterns", "find_patterns", agent.Args{"data": series})
	case "trend":
		err = run("trend", "predict_trend", agent.Args{"historical_data": series})
	default:
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("unknown analysis type: %s", analysisType), nil)
	}

	if err != nil {
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("analysis error: %v", err),
			map[string]any{"error": err.Error()})
	}

	return a.Reply(msg, agent.TypeResponse, "Analysis complete", response)
}
