// Package cli constructs the cnnkit command-line interface, wiring the Cobra
// command hierarchy, the Viper configuration loader, and the zap logger that
// every command receives through a LoggerProvider.
package cli
