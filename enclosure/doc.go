// Package enclosure classifies grid cells as inside or outside a pipe loop
// by scanline ray casting.
//
// For a cell (r, c) not on the loop, a ray runs along row r from column -1
// up to, but not including, column c. Only loop cells count, and only those
// whose pipe also runs vertically in one fixed direction:
//
//	CountUp   (default): '|', 'L', 'J'
//	CountDown:           '|', '7', 'F'
//
// The cell is inside if the count is odd. Horizontal runs never flip the
// parity; a run that enters and leaves on the same side ('L-J' or 'F-7')
// counts 0 or 2, one that crosses ('L-7' or 'F-J') counts 1. Both rules
// classify every cell identically on a simple closed loop, but a scan must
// use only one of them.
//
// Rows are independent and are classified in parallel (see WithWorkers);
// the result does not depend on scheduling.
//
// Complexity: O(R×C) time, O(R + I) memory (I = inside cells reported).
package enclosure
