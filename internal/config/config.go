package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return errors.New("invalid duration")
	}
}

type Config struct {
	From    int      `json:"from"`
	To      int      `json:"to"`
	Step    int      `json:"step"`
	Ops     int      `json:"ops"`
	Workers int      `json:"workers"`
	Seed    uint64   `json:"seed"`
	Timeout Duration `json:"timeout"`
	Verify  bool     `json:"verify"`
	Trace   bool     `json:"trace"`
	Format  string   `json:"format"`
	LogFile string   `json:"log_file"`
}

// Default matches the sweep of the original experiment: N from 100 to
// 10000 in steps of 100, 1000 inserts and 1000 deletes per tree.
func Default() Config {
	return Config{
		From:    100,
		To:      10000,
		Step:    100,
		Ops:     1000,
		Workers: 4,
		Seed:    1,
		Format:  "text",
	}
}

func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func (c Config) Validate() error {
	if c.From <= 0 {
		return fmt.Errorf("from must be positive, got %d", c.From)
	}
	if c.To < c.From {
		return fmt.Errorf("to (%d) must not be less than from (%d)", c.To, c.From)
	}
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %d", c.Step)
	}
	if c.Ops < 0 {
		return fmt.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"from":     c.From,
		"to":       c.To,
		"step":     c.Step,
		"ops":      c.Ops,
		"workers":  c.Workers,
		"seed":     c.Seed,
		"timeout":  c.Timeout.String(),
		"verify":   c.Verify,
		"trace":    c.Trace,
		"format":   c.Format,
		"log_file": c.LogFile,
	}
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
