// Package agent provides the core message-passing substrate for roundtable:
// the message protocol, the tool invocation contract, the per-agent inbound
// queue, and the manager that registers agents, routes messages, and drives
// execution in bounded rounds.
//
// The execution model is single-threaded and cooperative. All scheduling is
// driven by explicit calls to Manager.ExecuteAgents; there is no background
// execution. The Manager owns the registry, the global message history, and
// the sequence counter; each Agent owns its queue and memory. State is
// mutex-guarded so that read-only introspection (history, snapshots) is safe
// from other goroutines such as a metrics server.
package agent
