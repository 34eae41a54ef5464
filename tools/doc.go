// Package tools provides the built-in capabilities that specialized agents
// register: arithmetic and expression evaluation, statistics, task planning,
// process simulation, and knowledge retrieval. The functions are pure; the
// *Tool constructors bind them into the agent.Tool contract with their
// declared parameter shapes.
package tools
