// Package roundtable wires scenario configurations onto the core substrate:
// it loads a YAML scenario, creates the declared role agents through the
// factory registry, routes the seed messages, and drives the manager's
// execution loop.
package roundtable

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roundtable-dev/roundtable/agent"
	_ "github.com/roundtable-dev/roundtable/agents" // register built-in roles
)

// Config is the top-level scenario configuration.
type Config struct {
	// Name labels the scenario in logs and graph exports.
	Name string `yaml:"name"`

	// MaxRounds bounds the execution loop. Defaults to 10.
	MaxRounds int `yaml:"max_rounds,omitempty"`

	// Agents declares the participating agents by role.
	Agents []agent.Def `yaml:"agents"`

	// Seeds are the messages routed before execution starts.
	Seeds []SeedDef `yaml:"seeds,omitempty"`
}

// SeedDef declares one message routed before the first round.
type SeedDef struct {
	Sender   string         `yaml:"sender"`
	Receiver string         `yaml:"receiver"`
	Type     string         `yaml:"type"`
	Content  string         `yaml:"content,omitempty"`
	Data     map[string]any `yaml:"data,omitempty"`
}

// FileReader reads config files; injectable for tests.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSFileReader implements FileReader using os.ReadFile.
type OSFileReader struct{}

func (r *OSFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ConfigLoader loads scenario configurations from a file.
type ConfigLoader struct {
	fileReader FileReader
}

// NewConfigLoader creates a config loader.
func NewConfigLoader(fr FileReader) *ConfigLoader {
	return &ConfigLoader{fileReader: fr}
}

// LoadConfig loads and parses a scenario file.
func (cl *ConfigLoader) LoadConfig(configPath string) (*Config, error) {
	data, err := cl.fileReader.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// BuildManager creates a manager with every declared agent registered, in
// declaration order.
func BuildManager(config *Config) (*agent.Manager, error) {
	mgr := agent.NewManager()

	for _, def := range config.Agents {
		a, err := agent.CreateAgent(def, mgr)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent (role %s): %w", def.Role, err)
		}
		if err := mgr.Register(a); err != nil {
			return nil, fmt.Errorf("failed to register agent %s: %w", a.Name(), err)
		}
		log.Printf("Created agent: %s (role: %s)", a.Name(), def.Role)
	}

	return mgr, nil
}

// SeedMessages routes the configured seed messages. A seed whose sender is a
// registered agent is sent through that agent so it lands in the sender's
// memory; other senders act as external drivers and are routed directly.
func SeedMessages(mgr *agent.Manager, seeds []SeedDef) error {
	for _, seed := range seeds {
		typ := agent.MessageType(seed.Type)

		if sender, err := mgr.Get(seed.Sender); err == nil {
			if _, err := sender.Send(seed.Receiver, typ, seed.Content, seed.Data); err != nil {
				return fmt.Errorf("seed %s -> %s: %w", seed.Sender, seed.Receiver, err)
			}
			continue
		}

		msg, err := agent.NewMessage(seed.Sender, seed.Receiver, typ, seed.Content)
		if err != nil {
			return fmt.Errorf("seed %s -> %s: %w", seed.Sender, seed.Receiver, err)
		}
		msg.Data = seed.Data
		if err := mgr.Route(msg); err != nil {
			return fmt.Errorf("seed %s -> %s: %w", seed.Sender, seed.Receiver, err)
		}
	}
	return nil
}

// Run loads a scenario file, executes it, and returns the execution report.
func Run(configPath string) (agent.Report, error) {
	loader := NewConfigLoader(&OSFileReader{})
	config, err := loader.LoadConfig(configPath)
	if err != nil {
		return agent.Report{}, err
	}
	return RunWithConfig(context.Background(), config)
}

// RunWithConfig executes a scenario with an already-parsed configuration.
func RunWithConfig(ctx context.Context, config *Config) (agent.Report, error) {
	mgr, err := BuildManager(config)
	if err != nil {
		return agent.Report{}, err
	}
	return RunScenario(ctx, mgr, config)
}

// RunScenario routes the seeds and drives the execution loop on an existing
// manager.
func RunScenario(ctx context.Context, mgr *agent.Manager, config *Config) (agent.Report, error) {
	if err := SeedMessages(mgr, config.Seeds); err != nil {
		return agent.Report{}, err
	}

	maxRounds := config.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 10
	}

	log.Printf("Executing scenario %q (max rounds: %d)", config.Name, maxRounds)
	report := mgr.ExecuteAgents(ctx, maxRounds)
	log.Printf("Scenario %q finished: %d rounds, %d messages, terminated by %s",
		config.Name, report.Rounds, report.MessagesRouted, report.TerminatedBy)
	return report, nil
}
