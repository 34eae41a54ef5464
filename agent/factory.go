package agent

import (
	"fmt"
	"sync"
)

// Def declares an agent in a scenario configuration: a role resolved through
// the factory registry, with an optional name override.
type Def struct {
	Name string `yaml:"name,omitempty"`
	Role string `yaml:"role"`
}

// FactoryFunc builds an agent for a role. The manager is provided so role
// constructors that pre-wire collaborator addresses can consult it; most
// ignore it since binding happens at registration.
type FactoryFunc func(def Def, mgr *Manager) (*Agent, error)

type registry struct {
	mu        sync.RWMutex
	factories map[string]FactoryFunc
}

var defaultRegistry = &registry{factories: make(map[string]FactoryFunc)}

// RegisterRole registers a factory for a role name. Role packages call this
// from init so scenario configs can refer to roles by name.
func RegisterRole(role string, factory FactoryFunc) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.factories[role] = factory
}

// RoleFactory retrieves the factory for a role name.
func RoleFactory(role string) (FactoryFunc, bool) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	f, ok := defaultRegistry.factories[role]
	return f, ok
}

// CreateAgent builds an agent from its definition using the role registry.
// The agent still has to be registered with a manager before it can route.
func CreateAgent(def Def, mgr *Manager) (*Agent, error) {
	factory, ok := RoleFactory(def.Role)
	if !ok {
		return nil, fmt.Errorf("unknown agent role: %s", def.Role)
	}
	return factory(def, mgr)
}
