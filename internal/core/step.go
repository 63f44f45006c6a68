package core

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// StepKind tags which shape a step was authored in.
type StepKind int

const (
	StepPlain StepKind = iota
	StepDetailed
)

// String returns the kind name.
func (k StepKind) String() string {
	switch k {
	case StepPlain:
		return "plain"
	case StepDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// Step is one unit of a guided explanation. Plain text steps carry a
// derived "Step N" title so renderers never need to inspect the kind.
type Step struct {
	Kind        StepKind `json:"-" yaml:"-"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tip         string   `json:"tip,omitempty" yaml:"tip,omitempty"`
}

// FallbackTitle returns the title used for steps authored without one.
// index is zero-based.
func FallbackTitle(index int) string {
	return fmt.Sprintf("Step %d", index+1)
}

// PlainStep builds a step from a bare text label.
func PlainStep(index int, text string) Step {
	return Step{
		Kind:        StepPlain,
		Title:       FallbackTitle(index),
		Description: text,
	}
}

// DetailedStep builds a titled step. An empty title falls back to "Step N".
func DetailedStep(index int, title, description, tip string) Step {
	if strings.TrimSpace(title) == "" {
		title = FallbackTitle(index)
	}
	return Step{
		Kind:        StepDetailed,
		Title:       title,
		Description: description,
		Tip:         tip,
	}
}

// HasTip returns true if the step carries a tip.
func (s Step) HasTip() bool {
	return s.Tip != ""
}

// StepSequence is an ordered list of steps. Items may be authored as plain
// strings or as {title, description, tip} records; both normalize to Step.
type StepSequence []Step

type stepRecord struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Tip         string `json:"tip" yaml:"tip"`
}

// UnmarshalYAML decodes a YAML list of mixed step items.
func (s *StepSequence) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: steps must be a list", value.Line)
	}

	steps := make(StepSequence, 0, len(value.Content))
	for i, item := range value.Content {
		steps = append(steps, yamlStep(i, item))
	}
	*s = steps
	return nil
}

func yamlStep(index int, node *yaml.Node) Step {
	switch node.Kind {
	case yaml.ScalarNode:
		return PlainStep(index, node.Value)
	case yaml.MappingNode:
		var rec stepRecord
		if err := node.Decode(&rec); err == nil && strings.TrimSpace(rec.Description) != "" {
			return DetailedStep(index, rec.Title, rec.Description, rec.Tip)
		}
	}

	// Anything else keeps its raw text as the description.
	return Step{
		Kind:        StepPlain,
		Title:       FallbackTitle(index),
		Description: rawYAML(node),
	}
}

func rawYAML(node *yaml.Node) string {
	out, err := yaml.Marshal(node)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// UnmarshalJSON decodes a JSON array of mixed step items.
func (s *StepSequence) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("steps must be a list: %w", err)
	}

	steps := make(StepSequence, 0, len(raw))
	for i, item := range raw {
		steps = append(steps, jsonStep(i, item))
	}
	*s = steps
	return nil
}

func jsonStep(index int, raw json.RawMessage) Step {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '"':
			var text string
			if err := json.Unmarshal(trimmed, &text); err == nil {
				return PlainStep(index, text)
			}
		case '{':
			var rec stepRecord
			if err := json.Unmarshal(trimmed, &rec); err == nil && strings.TrimSpace(rec.Description) != "" {
				return DetailedStep(index, rec.Title, rec.Description, rec.Tip)
			}
		}
	}

	return Step{
		Kind:        StepPlain,
		Title:       FallbackTitle(index),
		Description: string(trimmed),
	}
}
