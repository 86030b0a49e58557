// SPDX-License-Identifier: MIT

// Package antcolony solves the Traveling Salesman Problem approximately with
// Ant Colony Optimization.
//
// 🚀 What is antcolony?
//
//	A small, deterministic ACO engine and a command around it:
//		• Distance fields: generate, load and save N×N cost matrices (CSV)
//		• Pheromone fields: uniform init, evaporation, directed deposits, warm start
//		• Tour construction: roulette selection over τ^α·(1/d)^β with an explicit uniform fallback
//		• Colony simulator: step-by-step or full runs, cancellable, optional worker goroutines
//		• Reporting: console progress, convergence charts, SQLite run history
//
// ✨ Why choose antcolony?
//
//   - Reproducible – one injected random source; a fixed seed replays a run bit for bit
//   - Honest errors – sentinel errors everywhere, no panics on user input
//   - Flat storage – every matrix is a single row-major buffer
//
// Packages:
//
//	matrix/     - Dense flat row-major matrix, validators, sentinels
//	distance/   - immutable distance field: construction, generation, CSV I/O, preview
//	pheromone/  - mutable pheromone field: evaporate, deposit, snapshot
//	tour/       - tour validation, length, edges, rotation, formatting
//	colony/     - constructor, simulator, config, iteration statistics
//	report/     - console output and convergence chart
//	store/      - SQLite run history and named matrices
//	config/     - YAML configuration for the command
//	cmd/antcolony - the command-line entry point
//
// Quick example:
//
//	d, _ := distance.FromRows(rows)
//	rep, err := colony.Run(ctx, d, colony.DefaultConfig())
//	fmt.Println(rep.Best.Tour, rep.Best.Length)
//
//	go install github.com/katalvlaran/antcolony/cmd/antcolony@latest
package antcolony
