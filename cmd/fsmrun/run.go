package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/minifsm/pkg/config"
	"github.com/dmitrymomot/minifsm/pkg/fsm"
	"github.com/dmitrymomot/minifsm/pkg/logger"
)

func run(args []string, out io.Writer, cfg config.Config, log *slog.Logger) error {
	def, err := fsm.LoadDefinition(cfg.DefinitionPath)
	if err != nil {
		return err
	}

	m, err := def.Build(fsm.WithLogger(log.With(logger.Component("fsmrun"))))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		list(out, m)
		return nil
	}

	printer := fsm.Listen(func(_ *fsm.Machine, from, to fsm.State) {
		fmt.Fprintf(out, "%s -> %s\n", from, to)
	})
	for _, s := range m.States() {
		m.On(s, printer)
	}

	var failed []error
	for _, name := range args {
		if err := m.Move(name); err != nil {
			if cfg.Strict {
				return fmt.Errorf("apply %q: %w", name, err)
			}
			log.Warn("transition skipped", logger.Transition(name), logger.Error(err))
			failed = append(failed, err)
		}
	}

	fmt.Fprintf(out, "state: %s\n", m.State())
	if len(failed) > 0 {
		log.Warn("some transitions were skipped", slog.Int("count", len(failed)), logger.Errors(failed...))
	}
	return nil
}

func list(out io.Writer, m *fsm.Machine) {
	fmt.Fprintf(out, "state: %s\n", m.State())
	for _, t := range m.Transitions() {
		sources := make([]string, len(t.Sources))
		for i, s := range t.Sources {
			sources[i] = string(s)
		}
		mark := " "
		if m.Can(t.Name) {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s: [%s] -> %s\n", mark, t.Name, strings.Join(sources, ", "), t.Dest)
	}
}
