// Package hybrid chains the swarm engines into a two-phase router.
//
// Phase 1 runs the slime mold optimizer to obtain a normalized conductivity
// field over the city. Phase 2 builds a fresh finisher with that field
// injected and returns its path:
//
//   - FinishQLearning (default): a Q-learning solver whose reward is shaped
//     by ShapingWeight × conductivity of the destination cell.
//   - FinishAntColony: an ant colony whose pheromone field starts from the
//     conductivity field instead of a uniform prior.
//
// The pipeline adds sequencing only. Engine budgets, seeds and hooks come
// from the nested engine Options. Episodes reports the Q-learning budget
// used for a freshly generated map (FreshEpisodes) or for a quick re-solve
// after moving the endpoints on an unchanged map (FastEpisodes).
package hybrid
