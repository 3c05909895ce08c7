// Package export parses modpack export documents produced by the Arma 3
// launcher's "export to HTML" feature and extracts mod display names.
package export
