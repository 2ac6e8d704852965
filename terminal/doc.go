// Package terminal presents composited aquarium frames on a tcell screen.
//
// Features:
//   - Per-layer RGB styles from a hex theme
//   - Simplex-noise shimmer on waterline cells
//   - Key and resize events reduced to a small action set
//   - Clean terminal restoration through Fini, including on panic
package terminal
