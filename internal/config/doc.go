// Package config provides configuration structures and utilities for
// modsweep. It defines the options shared by the size and unused
// commands: the Arma installation root, export file paths, and report
// output preferences.
package config
