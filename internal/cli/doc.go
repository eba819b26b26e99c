// Package cli provides command-line interface setup and configuration
// for the dailyvocab application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// wiring of the daily digest pipeline.
package cli
