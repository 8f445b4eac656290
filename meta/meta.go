// meta/meta.go
package meta

// DEFAULT_ROWS defines the standard board height.
const DEFAULT_ROWS = 6

// DEFAULT_COLS defines the standard board width.
const DEFAULT_COLS = 7

// EXPERIMENT_GAMES defines the number of games per depth matchup.
const EXPERIMENT_GAMES = 10

// DEPTH_SHALLOW defines the default shallow side of a depth matchup.
const DEPTH_SHALLOW = 2

// DEPTH_DEEP defines the default deep side of a depth matchup.
const DEPTH_DEEP = 6
