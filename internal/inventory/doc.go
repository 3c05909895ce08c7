// Package inventory reconciles mod name listings: building active-mod
// sets from multiple exports, computing which downloaded mods no modpack
// references, and optionally re-sorting finished reports.
package inventory
