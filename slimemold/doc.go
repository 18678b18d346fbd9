// Package slimemold approximates a traffic-aware "conductivity" field over a
// city grid with a swarm of mobile agents, in the spirit of the slime mould
// algorithm.
//
// What:
//
//   - Conductivity starts at 1/(1+traffic) on every road and 0 on buildings.
//   - A fixed population of agents is placed on random roads. Each iteration
//     ranks them by cost (Euclidean distance to the goal plus a heavy
//     traffic penalty) and moves each one either toward the best agent
//     (probability w) or a small step toward a random peer.
//   - w decays exponentially with the iteration index, so the swarm shifts
//     from exploration to exploitation.
//   - Every committed move deposits a fixed amount on the destination cell.
//   - After the fixed iteration budget the field is divided by its maximum.
//
// Why:
//
//   - The normalized field is a cheap reward-shaping signal for the
//     Q-learning phase of the hybrid pipeline (see package hybrid), and a
//     pheromone prior for the ant colony.
//
// Complexity:
//
//   - Time:   O(I·(A·log A) + W·H), I = Iterations, A = Agents.
//   - Memory: O(W·H + A).
//
// Determinism:
//
//   - Each call seeds a fresh RNG from Options.Seed (0 ⇒ default seed), so
//     the same seed on the same grid yields a bit-identical field.
//
// Errors:
//
//   - ErrNilGrid, ErrBadAgents, ErrBadIterations, ErrBadWeight,
//     ErrNegativeParam for invalid input.
//   - ErrPlacementFailed when no free cell is found within the retry budget.
package slimemold
