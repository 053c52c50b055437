package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/mdbook-pagebreaks/internal/assets"
	"github.com/alnah/mdbook-pagebreaks/internal/config"
	"github.com/alnah/mdbook-pagebreaks/internal/fileutil"
	"github.com/alnah/mdbook-pagebreaks/internal/hints"
)

// runInit writes the page break stylesheet the HTML renderer needs.
// The book then lists it under output.html.additional-css.
func runInit(args []string, env *Environment) error {
	f, rest, err := parseInitFlags(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected arguments: %v", ErrUsage, rest)
	}

	cfg, log, err := setup(&f.common, env)
	if err != nil {
		return err
	}

	dir, err := resolveInitDir(f, cfg, env)
	if err != nil {
		return err
	}
	style := cfg.Init.Style
	if f.style != "" {
		style = f.style
	}

	loader, err := resolveLoader(cfg, env)
	if err != nil {
		return err
	}
	css, err := loader.LoadStyle(style)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.AvailableStyles()))
		}
		return err
	}
	if !strings.HasSuffix(css, "\n") {
		css += "\n"
	}

	path, err := fileutil.WriteFile(dir, cfg.Init.FileName, []byte(css), f.force)
	if err != nil {
		switch {
		case errors.Is(err, fileutil.ErrFileExists):
			return fmt.Errorf("%w%s", err, hints.ForFileExists())
		case errors.Is(err, fileutil.ErrNotDir):
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	log.Debug().Str("style", style).Bool("force", f.force).Msg("stylesheet written")
	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}

// resolveInitDir picks the output directory.
// Precedence: --output > init.outputDir > working directory.
func resolveInitDir(f *initFlags, cfg *config.Config, env *Environment) (string, error) {
	if f.output != "" {
		return f.output, nil
	}
	if cfg.Init.OutputDir != "" {
		return cfg.Init.OutputDir, nil
	}
	wd, err := env.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}

// resolveLoader returns the injected loader or one built from assets.basePath.
func resolveLoader(cfg *config.Config, env *Environment) (assets.AssetLoader, error) {
	if env.AssetLoader != nil {
		return env.AssetLoader, nil
	}
	return assets.NewAssetResolver(cfg.Assets.BasePath)
}
