// SPDX-License-Identifier: MIT

// Package pheromone holds the mutable N×N trail field a colony reads while
// building tours and updates once per iteration.
//
// Update rule (applied by a single writer after every ant has finished reading):
//
//	τ[i][j] ← (1-ρ)·τ[i][j]               Evaporate(ρ), ρ ∈ [0,1]
//	τ[i][j] ← τ[i][j] + Δ                 Deposit(i, j, Δ), directed cell only
//
// ρ = 1 zeroes the field; that is a degenerate but legal configuration.
// Every cell stays finite and non-negative; writes that would break this are
// rejected and leave the field unchanged.
package pheromone
