// Package workshop locates mod installation folders under an Arma 3 root
// directory and measures their recursive disk usage.
package workshop
