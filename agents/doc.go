// Package agents provides the built-in specialized roles: analyzer, planner,
// executor, coordinator, and knowledge. Each role wires its tools and
// handler onto a core agent and registers a factory so scenario configs can
// create it by role name. Custom roles follow the same pattern: implement
// agent.Handler and call agent.RegisterRole.
package agents
