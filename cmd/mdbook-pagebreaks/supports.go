package main

import (
	"errors"
	"fmt"

	pagebreaks "github.com/alnah/mdbook-pagebreaks"
)

var (
	// ErrMissingRenderer is returned when supports is called without a renderer.
	ErrMissingRenderer = errors.New("missing renderer name")

	// ErrRendererNotSupported makes mdBook skip the preprocessor for a renderer.
	ErrRendererNotSupported = errors.New("renderer not supported")
)

// runSupports answers mdBook's "supports <renderer>" probe through the exit status.
func runSupports(args []string, env *Environment) error {
	f, rest, err := parseCommonFlags("supports", args)
	if err != nil {
		return err
	}
	switch len(rest) {
	case 0:
		return fmt.Errorf("%w: usage: mdbook-pagebreaks supports <renderer>", ErrMissingRenderer)
	case 1:
	default:
		return fmt.Errorf("%w: supports takes one renderer, got %d", ErrUsage, len(rest))
	}

	_, log, err := setup(f, env)
	if err != nil {
		return err
	}

	renderer := rest[0]
	supported := pagebreaks.New().SupportsRenderer(renderer)
	log.Info().
		Str("renderer", renderer).
		Bool("supported", supported).
		Stringer("policy", pagebreaks.PolicyFor(renderer)).
		Msg("handling supports")

	if !supported {
		return fmt.Errorf("%w: %s", ErrRendererNotSupported, renderer)
	}
	return nil
}
