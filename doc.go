// Package pipeloop finds the closed pipe loop in a character grid, measures
// how far its farthest point is from the start, and counts the cells it
// encloses.
//
// 🚀 What is pipeloop?
//
//	A small, dependency-light toolkit that brings together:
//		• pipe/     : the six pipe orientations and their connections
//		• gridgraph/: grid parsing and start-orientation resolution
//		• bfs/      : a generic, hook-driven breadth-first search
//		• loop/     : one-way and two-way loop walks, farthest distance
//		• enclosure/: scanline interior/exterior classification
//
// Input is a rectangle of rows over {'.', '|', '-', 'L', 'J', '7', 'F', 'S'}
// with exactly one 'S'. The pipeline runs strictly forward:
//
//	Parse → Resolve start → Walk loop → Classify cells
//
// Quick ASCII example:
//
//	.....
//	.S-7.        loop length 8
//	.|.|.        farthest point 4 steps from S
//	.L-J.        1 enclosed cell
//	.....
//
// Usage:
//
//	m, err := pipeloop.New(rows, pipeloop.WithLogger(logger))
//	far, err := m.DistanceToFarthestPoint(ctx)
//	n, err := m.CountEnclosedCells(ctx)
//
// Both queries are read-only and may be called any number of times.
//
// The cmd/pipeloop command wraps this package with file input, YAML config,
// structured logging and a rendered view of the classification.
package pipeloop
