package agents

import (
	"context"
	"fmt"

	"github.com/roundtable-dev/roundtable/agent"
	"github.com/roundtable-dev/roundtable/tools"
)

// RoleKnowledge is the role name for the information management agent.
const RoleKnowledge = "knowledge"

func init() {
	agent.RegisterRole(RoleKnowledge, func(def agent.Def, _ *agent.Manager) (*agent.Agent, error) {
		return NewKnowledge(defName(def, "Knowledge")), nil
	})
}

// NewKnowledge creates the information management agent over the default
// knowledge base. It answers QUERY messages with a query type under "type":
// "search" (the default; payload "query") or "extract" (payload "text" and
// "keywords").
func NewKnowledge(name string) *agent.Agent {
	return NewKnowledgeWithBase(name, tools.DefaultKnowledgeBase())
}

// NewKnowledgeWithBase creates the knowledge agent over a custom base.
func NewKnowledgeWithBase(name string, kb map[string]string) *agent.Agent {
	return agent.New(name, "Information Management",
		agent.WithTools(
			tools.SearchKnowledgeBaseTool(kb),
			tools.ExtractInformationTool(),
		),
		agent.WithHandler(agent.HandlerFunc(handleKnowledgeQuery)),
	)
}

func handleKnowledgeQuery(ctx context.Context, a *agent.Agent, msg *agent.Message) (*agent.Message, error) {
	if msg.Type != agent.TypeQuery {
		return nil, nil
	}

	var (
		result any
		err    error
	)
	switch queryType := stringField(msg.Data, "type", "search"); queryType {
	case "search":
		result, err = a.UseTool("search_knowledge_base", agent.Args{
			"query": stringField(msg.Data, "query", ""),
		})
	case "extract":
		result, err = a.UseTool("extract_information", agent.Args{
			"text":     stringField(msg.Data, "text", ""),
			"keywords": listField(msg.Data, "keywords"),
		})
	default:
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("unknown query type: %s", queryType), nil)
	}

	if err != nil {
		return a.Reply(msg, agent.TypeError,
			fmt.Sprintf("knowledge error: %v", err),
			map[string]any{"error": err.Error()})
	}

	return a.Reply(msg, agent.TypeResponse, "Query processed",
		map[string]any{"result": result})
}
