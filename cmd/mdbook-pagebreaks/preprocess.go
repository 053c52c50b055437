package main

import (
	"errors"
	"fmt"

	pagebreaks "github.com/alnah/mdbook-pagebreaks"
	"github.com/alnah/mdbook-pagebreaks/internal/hints"
)

// runPreprocess handles the default command: mdBook writes [context, book]
// to stdin and reads the processed book back from stdout.
func runPreprocess(args []string, env *Environment) error {
	f, rest, err := parseCommonFlags("preprocess", args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected arguments: %v", ErrUsage, rest)
	}

	_, log, err := setup(f, env)
	if err != nil {
		return err
	}

	ctx, book, err := pagebreaks.ParseInput(env.Stdin)
	if err != nil {
		if errors.Is(err, pagebreaks.ErrEmptyInput) || errors.Is(err, pagebreaks.ErrInvalidInput) {
			return fmt.Errorf("%w%s", err, hints.ForInvalidInput(env.StdinIsTerminal()))
		}
		return err
	}

	if err := pagebreaks.CheckVersion(ctx.MDBookVersion); err != nil {
		if !errors.Is(err, pagebreaks.ErrVersionMismatch) {
			return err
		}
		log.Warn().
			Str("preprocessor", pagebreaks.Name).
			Str("built_against", pagebreaks.SupportedMDBookVersion).
			Str("called_from", ctx.MDBookVersion).
			Msg("mdBook version mismatch" + hints.ForVersionMismatch(pagebreaks.SupportedMDBookVersion))
	}

	if e := log.Debug(); e.Enabled() {
		chapters, markers := 0, 0
		book.ForEachChapter(func(ch *pagebreaks.Chapter) {
			chapters++
			markers += pagebreaks.CountPageBreaks(ch.Content)
		})
		e.Str("renderer", ctx.Renderer).
			Stringer("policy", pagebreaks.PolicyFor(ctx.Renderer)).
			Int("chapters", chapters).
			Int("markers", markers).
			Msg("processing book")
	}

	processed, err := pagebreaks.New().Run(ctx, book)
	if err != nil {
		return err
	}
	return pagebreaks.WriteOutput(env.Stdout, processed)
}
