package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hay-kot/criterio"
)

// Validate checks that the configuration is valid: the master path is set,
// every keyword group names a known operation, and no alias is bound to two
// different operations.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("master", c.Master, masterNotEmpty),
		c.validateOps(),
		c.validateAliases(),
	)
}

func masterNotEmpty(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// validateOps rejects keyword groups for operations that don't exist.
func (c *Config) validateOps() error {
	for _, op := range sortedOps(c.Keywords) {
		if !isKnownOp(op) {
			return criterio.NewFieldErrors("keywords", fmt.Errorf("unknown operation %q", op))
		}
	}
	return nil
}

// validateAliases rejects empty aliases and aliases bound to more than one
// operation. A canonical operation name always dispatches to itself, so
// using it as an alias for a different operation is also a conflict.
func (c *Config) validateAliases() error {
	bound := make(map[string]string)
	for _, op := range sortedOps(c.Keywords) {
		for _, alias := range c.Keywords[op] {
			if strings.TrimSpace(alias) == "" {
				return criterio.NewFieldErrors("keywords", fmt.Errorf("operation %q has an empty alias", op))
			}
			if isKnownOp(alias) && alias != op {
				return criterio.NewFieldErrors("keywords", fmt.Errorf("alias %q for %q shadows a built-in operation", alias, op))
			}
			if prev, ok := bound[alias]; ok && prev != op {
				return criterio.NewFieldErrors("keywords", fmt.Errorf("alias %q bound to both %q and %q", alias, prev, op))
			}
			bound[alias] = op
		}
	}
	return nil
}

// sortedOps returns map keys in a stable order so validation errors are
// deterministic.
func sortedOps(m map[string][]string) []string {
	ops := make([]string, 0, len(m))
	for op := range m {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
