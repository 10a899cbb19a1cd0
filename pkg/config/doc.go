// Package config loads the fsmrun command configuration from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or more `.env` files (falling back to an optional
//     `.env` in the working directory). Existing variables win.
//   - Parse fills any struct from the environment using `env` field tags.
//   - Load combines both for Config and validates the result.
//
// # Variables
//
//	APP_ENV           development | staging | production (logger preset)
//	FSM_SERVICE_NAME  service attribute on every log record
//	FSM_LOG_LEVEL     debug | info | warn | error, overrides the preset
//	FSM_LOG_FORMAT    json | text, overrides the preset
//	FSM_DEFINITION    path of the YAML machine definition
//	FSM_STRICT        stop at the first failed transition
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//	l := logger.New(cfg.LoggerOptions(os.Stderr)...)
package config
