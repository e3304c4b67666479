// Package tasks contains the shipped task generators and their registry
// wiring. Every generator is a pure function of (config, local stream): the
// only state a dataset holds besides its config is corpus material loaded
// once at construction.
package tasks

import (
	"fmt"

	"github.com/abhisek/taskgym/internal/dataset"
	"github.com/abhisek/taskgym/internal/registry"
)

// Registered generator names.
const (
	LetterCounting    = "letter_counting"
	CaesarCipher      = "caesar_cipher"
	WordSorting       = "word_sorting"
	ColorCubeRotation = "color_cube_rotation"
	Countdown         = "countdown"
)

// RegisterAll adds every shipped generator to r. Registration is explicit:
// callers decide which registry holds the builtins and when.
func RegisterAll(r *registry.Registry) error {
	entries := map[string]registry.Entry{
		LetterCounting: {
			Config: DefaultLetterCountingConfig(),
			New: func(cfg dataset.Config) (dataset.Dataset, error) {
				return NewLetterCounting(cfg.(LetterCountingConfig))
			},
		},
		CaesarCipher: {
			Config: DefaultCaesarCipherConfig(),
			New: func(cfg dataset.Config) (dataset.Dataset, error) {
				return NewCaesarCipher(cfg.(CaesarCipherConfig))
			},
		},
		WordSorting: {
			Config: DefaultWordSortingConfig(),
			New: func(cfg dataset.Config) (dataset.Dataset, error) {
				return NewWordSorting(cfg.(WordSortingConfig))
			},
		},
		ColorCubeRotation: {
			Config: DefaultColorCubeRotationConfig(),
			New: func(cfg dataset.Config) (dataset.Dataset, error) {
				return NewColorCubeRotation(cfg.(ColorCubeRotationConfig))
			},
		},
		Countdown: {
			Config: DefaultCountdownConfig(),
			New: func(cfg dataset.Config) (dataset.Dataset, error) {
				return NewCountdown(cfg.(CountdownConfig))
			},
		},
	}
	for name, e := range entries {
		if err := r.Register(name, e); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

// Builtins returns a fresh registry holding every shipped generator.
func Builtins() *registry.Registry {
	r := registry.New()
	if err := RegisterAll(r); err != nil {
		// Registering builtins into an empty registry cannot conflict.
		panic(err)
	}
	return r
}
