// Package main provides the entry point for the modsweep CLI.
//
// modsweep inventories Arma 3 workshop mods from launcher modpack exports.
// It reports the disk usage of every mod a modpack references, and can
// identify mods that are downloaded locally but referenced by no active
// modpack.
//
// Usage:
//
//	modsweep size -f <modpack.html>
//	modsweep unused -f <active1.html> -f <active2.html> -a <allmods.html>
//
// See --help for all available options.
package main

// main is the entry point for modsweep.
func main() {
	Execute()
}
