package main

import (
	"errors"

	"github.com/katalvlaran/wlrefine/scenario"
)

// source selects where scenarios come from.
type source struct {
	name string
	file string
	all  bool
}

var errNoSource = errors.New("one of --scenario, --file or --all is required")

// load resolves the selected scenarios in a stable order.
func (s source) load() ([]*scenario.Scenario, error) {
	switch {
	case s.file != "":
		sc, err := scenario.LoadFile(s.file)
		if err != nil {
			return nil, err
		}
		return []*scenario.Scenario{sc}, nil
	case s.name != "":
		sc, err := scenario.Load(s.name)
		if err != nil {
			return nil, err
		}
		return []*scenario.Scenario{sc}, nil
	case s.all:
		names := scenario.List()
		out := make([]*scenario.Scenario, 0, len(names))
		for _, name := range names {
			sc, err := scenario.Load(name)
			if err != nil {
				return nil, err
			}
			out = append(out, sc)
		}
		return out, nil
	}
	return nil, errNoSource
}
