package configs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/aacfactory/afseed"
	"github.com/aacfactory/afseed/bench"
	"github.com/aacfactory/afseed/seed"
)

type Bench struct {
	Data    string `json:"data" yaml:"data"`
	Dataset string `json:"dataset" yaml:"dataset"`
	Output  string `json:"output" yaml:"output"`
	Sizes   []int  `json:"sizes" yaml:"sizes"`
	Mode    string `json:"mode" yaml:"mode"`
	Runs    int    `json:"runs" yaml:"runs"`
	Workers int    `json:"workers" yaml:"workers"`
	Key     string `json:"key" yaml:"key"`
}

// LoadBench reads a JSON bench config. Fields not set keep their zero values.
func LoadBench(path string) (config *Bench, err error) {
	p, readErr := os.ReadFile(path)
	if readErr != nil {
		err = fmt.Errorf("afseed: read %s: %w", path, readErr)
		return
	}
	config = &Bench{}
	if decodeErr := json.Unmarshal(p, config); decodeErr != nil {
		config = nil
		err = fmt.Errorf("afseed: parse %s: %w", path, decodeErr)
		return
	}
	return
}

// Resolve fills empty fields with defaults.
func (config *Bench) Resolve() {
	config.Data = strings.TrimSpace(config.Data)
	if config.Dataset == "" {
		config.Dataset = "paysim_32bit"
	}
	if config.Output == "" {
		config.Output = "results/crypto/seed_multi_benchmark.json"
	}
	if len(config.Sizes) == 0 {
		config.Sizes = append([]int(nil), bench.DefaultSizes...)
	}
	if config.Mode == "" {
		config.Mode = string(bench.ModeBlock)
	}
	if config.Runs <= 0 {
		config.Runs = 3
	}
	if config.Workers <= 0 {
		config.Workers = 1
		if strings.ToLower(strings.TrimSpace(config.Mode)) == string(bench.ModeStream) {
			config.Workers = runtime.NumCPU()
		}
	}
}

// Load converts the config into bench options.
func (config *Bench) Load() (options []bench.Option, err error) {
	if config.Data == "" {
		err = errors.Join(errors.New("afseed: load bench config failed"), errors.New("data is required"))
		return
	}
	mode, modeErr := bench.ParseMode(strings.ToLower(strings.TrimSpace(config.Mode)))
	if modeErr != nil {
		err = errors.Join(errors.New("afseed: load bench config failed"), modeErr)
		return
	}
	key := bench.BenchmarkKey()
	if k := strings.TrimSpace(config.Key); k != "" {
		raw, keyErr := afseed.ParseKey(k)
		if keyErr != nil {
			err = errors.Join(errors.New("afseed: load bench config failed"), keyErr)
			return
		}
		key = [seed.KeySize]byte(raw)
	}
	options = []bench.Option{
		bench.WithDataset(config.Dataset),
		bench.WithMode(mode),
		bench.WithRuns(config.Runs),
		bench.WithWorkers(config.Workers),
		bench.WithKey(key),
	}
	return
}
