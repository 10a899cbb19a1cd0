// Command fsmrun loads a YAML machine definition and applies the
// transitions named on the command line, printing every state change.
//
//	FSM_DEFINITION=order.yaml fsmrun submit approve ship
//
// Without arguments it lists the transitions and whether each one can
// fire from the initial state.
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/minifsm/pkg/config"
	"github.com/dmitrymomot/minifsm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(cfg.LoggerOptions(os.Stderr)...)
	logger.SetAsDefault(log)
	log.Debug("configuration loaded", "config", cfg)

	if err := run(os.Args[1:], os.Stdout, cfg, log); err != nil {
		log.Error("fsmrun failed", logger.Error(err))
		os.Exit(1)
	}
}
