//go:build race

package cursor

// RaceEnabled reports whether the binary was built with -race.
const RaceEnabled = true
