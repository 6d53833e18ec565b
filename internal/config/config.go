// Package config holds the language-level constants and tunable limits of the
// quon runtime core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeySigil prefixes string keys in the Object key namespace. Every key that
// does not start with the sigil is the canonical decimal text of a signed
// 64-bit integer key.
const KeySigil = "$"

// Display literals used by value stringification.
const (
	VoidText          = "()"
	ErrorText         = "err"
	FunctionText      = `\(...) => ...`
	ThreadSigil       = "@"
	CurrentThreadText = ThreadSigil + "this"
)

// Limits bounds the resources an interpreter instance may consume.
type Limits struct {
	// MaxScopeDepth caps the local scope stack. Entering a scope past this
	// depth fails, which is how runaway recursion in the (future) evaluator
	// surfaces instead of exhausting memory.
	MaxScopeDepth int `yaml:"max_scope_depth"`

	// TraceBindings enables debug logging of every binding operation.
	TraceBindings bool `yaml:"trace_bindings"`
}

// DefaultLimits returns the limits used when no configuration is supplied.
func DefaultLimits() Limits {
	return Limits{MaxScopeDepth: 10000}
}

// Parse reads Limits from YAML. Absent fields keep their defaults.
func Parse(data []byte) (Limits, error) {
	limits := DefaultLimits()
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf("config: parse limits: %w", err)
	}
	if limits.MaxScopeDepth < 1 {
		return Limits{}, fmt.Errorf("config: max_scope_depth must be at least 1, got %d", limits.MaxScopeDepth)
	}
	return limits, nil
}

// Load reads Limits from a YAML file.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}
