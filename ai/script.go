package ai

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// EngageScript is a compiled tengo guard that may veto a new chase. The
// script reads dx, dy and distance and sets engage.
type EngageScript struct {
	Name     string
	compiled *tengo.Compiled
}

func NewEngageScript(name string, src []byte) (*EngageScript, error) {
	script := tengo.NewScript(src)
	for _, v := range []string{"dx", "dy", "distance"} {
		if err := script.Add(v, 0.0); err != nil {
			return nil, fmt.Errorf("ai: script %s: add %s: %w", name, v, err)
		}
	}
	if err := script.Add("engage", true); err != nil {
		return nil, fmt.Errorf("ai: script %s: add engage: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: script %s: compile: %w", name, err)
	}
	return &EngageScript{Name: name, compiled: compiled}, nil
}

// Allows runs the guard. A failing script never vetoes.
func (s *EngageScript) Allows(dx, dy, distance float64) bool {
	if s == nil || s.compiled == nil {
		return true
	}
	vars := map[string]any{"dx": dx, "dy": dy, "distance": distance, "engage": true}
	for name, v := range vars {
		if err := s.compiled.Set(name, v); err != nil {
			log.Printf("ai: script %s: set %s: %v", s.Name, name, err)
			return true
		}
	}
	if err := s.compiled.Run(); err != nil {
		log.Printf("ai: script %s: run: %v", s.Name, err)
		return true
	}
	return s.compiled.Get("engage").Bool()
}
