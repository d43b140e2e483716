// Package commands defines the resistcalc CLI.
//
// Commands
//
//   - solve   Pick feedback-divider resistors for a target output voltage
//   - series  Print an E-series standard-value grid
//   - mpn     Encode a resistance as a Yageo part number
//
// # Implementation
//
// The root command carries the grid bounds as persistent flags, so every
// subcommand sweeps the same resistance range without re-parsing them.
package commands
