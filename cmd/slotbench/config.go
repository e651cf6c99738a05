package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/delaneyj/slotparty/pool"
	"github.com/delaneyj/slotparty/slots"
	"gopkg.in/yaml.v3"
)

// scenario describes one benchmark run. It can be loaded from a .toml, .yaml
// or .yml file; anything left out keeps its default.
type scenario struct {
	Slots      []int  `toml:"slots" yaml:"slots"`
	Iterations int    `toml:"iterations" yaml:"iterations"`
	Executor   string `toml:"executor" yaml:"executor"` // inline, goroutine or pool
	Workers    int    `toml:"workers" yaml:"workers"`
}

func defaultScenario() scenario {
	return scenario{
		Slots:      []int{10, 100, 1_000},
		Iterations: 1_000,
		Executor:   "inline",
		Workers:    4,
	}
}

func loadScenario(path string) (scenario, error) {
	sc := defaultScenario()
	if path == "" {
		return sc, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &sc); err != nil {
			return sc, fmt.Errorf("reading %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return sc, err
		}
		if err := yaml.Unmarshal(b, &sc); err != nil {
			return sc, fmt.Errorf("reading %s: %w", path, err)
		}
	default:
		return sc, fmt.Errorf("unknown scenario format %q", ext)
	}

	if len(sc.Slots) == 0 {
		return sc, fmt.Errorf("%s: no slot counts", path)
	}
	for _, n := range sc.Slots {
		if n < 1 {
			return sc, fmt.Errorf("%s: slot count %d must be positive", path, n)
		}
	}
	if sc.Iterations < 1 {
		return sc, fmt.Errorf("%s: iterations must be positive", path)
	}
	return sc, nil
}

// executor builds the executor the scenario asks for. The returned stop func
// must be called once the emitters using it are closed.
func (sc scenario) executor() (slots.Executor, func(), error) {
	switch sc.Executor {
	case "", "inline":
		return slots.InlineExecutor, func() {}, nil
	case "goroutine":
		return slots.GoroutineExecutor, func() {}, nil
	case "pool":
		p := pool.New(pool.WithWorkers(sc.Workers))
		return p, func() { p.Stop(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown executor %q", sc.Executor)
	}
}
