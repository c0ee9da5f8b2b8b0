package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/y-du/simple-struct/internal/match"
	"github.com/y-du/simple-struct/shapefile"
	"github.com/y-du/simple-struct/structure"
)

var errNoShapes = errors.New("--shapes is required")

func loadShapes(params *cliParams) (*shapefile.File, error) {
	if params.shapes == "" {
		return nil, errNoShapes
	}

	f, err := shapefile.LoadFile(params.shapes)
	if err != nil {
		return nil, err
	}

	logger.Verbose(fmt.Sprintf("loaded %d shapes from %s", len(f.Shapes), params.shapes))

	return f, nil
}

func loadType(params *cliParams, name string) (*structure.Type, error) {
	f, err := loadShapes(params)
	if err != nil {
		return nil, err
	}

	reg, err := shapefile.Build(f)
	if err != nil {
		return nil, err
	}

	if name == "" {
		names := reg.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("%s declares no shapes", params.shapes)
		}

		name = names[0]
		logger.Verbose("no --type given, using first shape " + name)
	}

	t, ok := reg.Lookup(name)
	if !ok {
		msg := fmt.Sprintf("unknown shape %q", name)
		if s := match.Suggest(name, reg.Names(), 3); len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
		}

		return nil, errors.New(msg)
	}

	return t, nil
}
