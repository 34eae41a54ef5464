// Package graph builds a read-only interaction graph from a manager's
// registry snapshot and message history: agent and tool nodes, ownership
// edges from agents to their tools, and weighted message-flow edges between
// agents. The export subsystem consumes the manager's introspection views
// only; it has no write access back into the core.
package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/roundtable-dev/roundtable/agent"
)

// NodeKind classifies graph nodes.
type NodeKind string

const (
	NodeAgent NodeKind = "agent"
	NodeTool  NodeKind = "tool"
)

// EdgeKind classifies graph edges.
type EdgeKind string

const (
	// EdgeMessage is a message-flow edge between two agents; its weight is
	// the number of messages routed in that direction.
	EdgeMessage EdgeKind = "message"

	// EdgeOwnership links an agent to a tool in its registry.
	EdgeOwnership EdgeKind = "ownership"
)

// Node is one vertex of the interaction graph.
type Node struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Kind NodeKind `json:"kind"`
	Role string   `json:"role,omitempty"`
}

// Edge is one directed edge of the interaction graph.
type Edge struct {
	Source string         `json:"source"`
	Target string         `json:"target"`
	Kind   EdgeKind       `json:"kind"`
	Weight int            `json:"weight"`
	Types  map[string]int `json:"message_types,omitempty"`
}

// Graph is a directed multigraph keyed by node ID. Safe for concurrent use.
type Graph struct {
	mu    sync.RWMutex
	name  string
	nodes map[string]*Node
	order []string
	edges map[string]*Edge
}

// New creates an empty graph with a display name.
func New(name string) *Graph {
	return &Graph{
		name:  name,
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// FromManager builds the interaction graph from a manager's read-only views:
// one agent node per registered agent, one tool node per registered tool
// (namespaced by owner, since tool names are only unique per agent), and one
// message edge per sender/receiver pair seen in history.
func FromManager(name string, m *agent.Manager) *Graph {
	g := New(name)

	snapshot := m.Snapshot()
	for _, agentName := range m.List() {
		info := snapshot[agentName]
		g.AddNode(&Node{ID: agentName, Name: agentName, Kind: NodeAgent, Role: info.Role})
		for _, tool := range info.Tools {
			toolID := fmt.Sprintf("%s/%s", agentName, tool)
			g.AddNode(&Node{ID: toolID, Name: tool, Kind: NodeTool})
			_ = g.AddEdge(agentName, toolID, EdgeOwnership, "")
		}
	}

	for _, msg := range m.History() {
		// Senders outside the registry (seed drivers) still appear in
		// history; give them a node so the flow stays visible.
		if _, ok := g.Node(msg.Sender); !ok {
			g.AddNode(&Node{ID: msg.Sender, Name: msg.Sender, Kind: NodeAgent})
		}
		_ = g.AddEdge(msg.Sender, msg.Receiver, EdgeMessage, string(msg.Type))
	}

	return g
}

// AddNode inserts a node; adding an existing ID overwrites it.
func (g *Graph) AddNode(n *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = n
}

// Node retrieves a node by ID.
func (g *Graph) Node(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// AddEdge records one interaction between two existing nodes, incrementing
// the weight of the edge if it already exists. For message edges, msgType
// tallies the per-type counts. Referencing a missing node fails with
// UnknownNodeError.
func (g *Graph) AddEdge(source, target string, kind EdgeKind, msgType string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[source]; !ok {
		return &UnknownNodeError{ID: source}
	}
	if _, ok := g.nodes[target]; !ok {
		return &UnknownNodeError{ID: target}
	}

	key := fmt.Sprintf("%s|%s|%s", source, target, kind)
	e, ok := g.edges[key]
	if !ok {
		e = &Edge{Source: source, Target: target, Kind: kind}
		g.edges[key] = e
	}
	e.Weight++
	if kind == EdgeMessage && msgType != "" {
		if e.Types == nil {
			e.Types = make(map[string]int)
		}
		e.Types[msgType]++
	}
	return nil
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges ordered by source, target, kind.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		if out[i].Target != out[j].Target {
			return out[i].Target < out[j].Target
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Neighbors returns the IDs of nodes reachable from id by one outgoing
// edge, sorted.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool)
	for _, e := range g.edges {
		if e.Source == id {
			seen[e.Target] = true
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MostActive returns the agent node with the highest outgoing message
// weight, or "" for a graph without message traffic.
func (g *Graph) MostActive() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	totals := make(map[string]int)
	for _, e := range g.edges {
		if e.Kind == EdgeMessage {
			totals[e.Source] += e.Weight
		}
	}

	best, bestWeight := "", 0
	for _, id := range g.order {
		if w := totals[id]; w > bestWeight {
			best, bestWeight = id, w
		}
	}
	return best
}

// Stats summarizes the graph for reports.
type Stats struct {
	Nodes    int `json:"nodes"`
	Edges    int `json:"edges"`
	Messages int `json:"messages"`
}

// Summarize computes node, edge, and total message counts.
func (g *Graph) Summarize() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	for _, e := range g.edges {
		if e.Kind == EdgeMessage {
			s.Messages += e.Weight
		}
	}
	return s
}

// export is the serialized shape of a graph.
type export struct {
	Name  string  `json:"name"`
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
	Stats Stats   `json:"stats"`
}

// MarshalJSON serializes the graph with deterministic node and edge order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(export{
		Name:  g.name,
		Nodes: g.Nodes(),
		Edges: g.Edges(),
		Stats: g.Summarize(),
	})
}

// WriteJSON writes the indented JSON export to w.
func (g *Graph) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
