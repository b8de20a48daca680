package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
)

// jsonConfig resolves flags from a JSON object keyed by long flag name.
//
// Keys may be written with either hyphens or underscores, eg. "max-depth" or "max_depth". Keys
// that do not name a flag are rejected.
type jsonConfig map[string]interface{}

var _ kong.Resolver = jsonConfig{}

func loadConfig(r io.Reader) (kong.Resolver, error) {
	raw := map[string]interface{}{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config := jsonConfig{}
	for key, value := range raw {
		config[strings.ReplaceAll(key, "_", "-")] = value
	}
	return config, nil
}

func (c jsonConfig) Validate(app *kong.Application) error {
	known := map[string]bool{}
	for _, flag := range app.Flags {
		known[flag.Name] = true
	}
	unknown := []string{}
	for key := range c {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown configuration keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func (c jsonConfig) Resolve(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
	return c[flag.Name], nil
}
