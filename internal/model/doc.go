// Package model defines the report data structures shared by the
// inventory logic and the report writers.
package model
