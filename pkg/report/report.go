// Package report renders Cooklang recipes through Jinja-style templates.
//
// The template sees the parsed recipe (ingredients, cookware, timers,
// metadata, steps) with every numeric quantity already scaled, plus
// recipe-domain filters and functions, including db() lookups against a
// YAML datastore directory.
package report

import (
	"errors"
	"os"

	cooklang "github.com/aquilax/cooklang-go"
	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/cookworks/cookreport/internal/pantry"
	"github.com/cookworks/cookreport/internal/render"
	"github.com/cookworks/cookreport/pkg/datastore"
)

// Render renders a recipe through a template with DefaultConfig.
func Render(recipeText, templateText string) (string, error) {
	return RenderWithConfig(recipeText, templateText, DefaultConfig())
}

// RenderWithConfig renders a recipe through a template. The same inputs
// always produce byte-identical output.
//
// Errors are *ParseError, *TemplateError, or one of the datastore error
// kinds when a db() lookup failed during execution.
func RenderWithConfig(recipeText, templateText string, cfg Config) (string, error) {
	recipe, err := cooklang.ParseString(recipeText)
	if err != nil {
		return "", &ParseError{Cause: err}
	}

	opts := render.Options{Scale: cfg.Scale()}
	if path := cfg.DatastorePath(); path != "" {
		opts.Store = datastore.Open(path)
	}
	opts.Aisle = loadPantryFile(cfg.AislePath())
	opts.Pantry = loadPantryFile(cfg.PantryPath())

	tpl, err := pongo2.FromString(templateText)
	if err != nil {
		return "", &TemplateError{Line: templateLine(err), Cause: err}
	}

	ctx, state := render.BuildContext(recipe, opts)
	out, err := tpl.Execute(ctx)
	if err != nil {
		// The engine flattens function errors into text; the recorded
		// lookup error carries the concrete datastore type.
		if state.LookupErr != nil {
			return "", state.LookupErr
		}
		return "", &TemplateError{Line: templateLine(err), Cause: err}
	}
	return out, nil
}

// loadPantryFile parses an optional aisle or pantry file. A missing or
// unreadable file is treated as absent; the CLI warns about it, the
// library stays silent.
func loadPantryFile(path string) *pantry.File {
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return pantry.Parse(string(content))
}

func templateLine(err error) int {
	var pErr *pongo2.Error
	if errors.As(err, &pErr) {
		return pErr.Line
	}
	return 0
}
