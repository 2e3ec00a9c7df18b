// Package commands implements the CLI command handlers for rangefetch.
//
// Each subcommand implements the Runner interface:
//   - Init(): parse arguments and load/validate configuration
//   - Run(): execute the command
//   - Name(): command name used for dispatch
//
// Available commands:
//   - fetch: run the provider pipeline (optionally dry-run, without chunks)
//   - serve: expose the generated lists over a read-only HTTP API
package commands
