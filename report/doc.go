// SPDX-License-Identifier: MIT

// Package report renders colony runs for people: console lines while a run
// progresses, a final route summary, and a PNG convergence chart.
//
// Console format:
//
//	Iteration 1: Best Length = 1234
//	...
//	Best Route: 17 -> 4 -> ... -> 9
//	Best Length: 1187
package report
