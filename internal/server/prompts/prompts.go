// Package prompts holds the fixed instructions sent to the language model.
// Defaults can be overridden from a YAML file.
package prompts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Prompts is the full set of model instructions.
type Prompts struct {
	// Persona is the first system entry of every transcript.
	Persona string `yaml:"persona"`
	// OpeningNote tells the model which question was asked first.
	OpeningNote string `yaml:"opening_note"`
	// OpeningQuestion is shown to the user when an interview starts.
	OpeningQuestion string `yaml:"opening_question"`

	Summary      string `yaml:"summary"`
	Title        string `yaml:"title"`
	Illustration string `yaml:"illustration"`
}

const defaultOpeningQuestion = "How was your day today?"

// Default returns the built-in prompts.
func Default() Prompts {
	return Prompts{
		Persona:         "You are an interviewer collecting material for a diary. Ask exactly one short question.",
		OpeningNote:     fmt.Sprintf("You started by asking: %q", defaultOpeningQuestion),
		OpeningQuestion: defaultOpeningQuestion,
		Summary:         "Using the information above, write a diary entry of about 100 characters. Keep it easy to read and easy to follow.",
		Title:           "Using the information below, write a title for the diary. About 10 characters, ending in a noun, easy to read and easy to follow.",
		Illustration:    "Using the information below, write an English prompt that would generate a hand-drawn style picture of it. Output only the prompt.",
	}
}

// Load reads path and overlays every non-empty field on top of Default.
// An empty path returns the defaults.
func Load(path string) (Prompts, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read prompts file: %w", err)
	}

	var override Prompts
	if err := yaml.Unmarshal(data, &override); err != nil {
		return p, fmt.Errorf("parse prompts file: %w", err)
	}

	p.merge(override)
	return p, nil
}

func (p *Prompts) merge(o Prompts) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Persona, o.Persona)
	set(&p.OpeningNote, o.OpeningNote)
	set(&p.OpeningQuestion, o.OpeningQuestion)
	set(&p.Summary, o.Summary)
	set(&p.Title, o.Title)
	set(&p.Illustration, o.Illustration)
}
