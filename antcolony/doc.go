// Package antcolony constructs start→goal paths on a city grid with an ant
// colony: ants walk stochastically, guided by a pheromone field and a
// goal-distance heuristic, and shorter successful walks reinforce the field.
//
// Move rule:
//
//	p(n) ∝ τ(n)^α · η(n)^β,   η(n) = 1 / (‖n − goal‖₂ + 1)
//
// over the unvisited passable neighbors n of the current cell. A zero total
// weight falls back to a uniform choice; otherwise a roulette wheel decides.
// An ant with no unvisited neighbor, or still walking after Width×Height
// steps, fails for this iteration.
//
// Pheromone update (once per iteration, after all ants walked):
//
//	τ ← Retention·τ
//	τ(c) += 1/len(p)   for every cell c of every successful path p
//
// so a path of L cells adds exactly 1 unit of mass, concentrated on fewer
// cells the shorter it is.
//
// The shortest successful path seen across all iterations is returned
// (strict improvement only), or citymap.ErrNoPath if no ant ever arrived.
//
// Concurrency:
//
//   - With Workers > 1 the ants of one iteration walk concurrently
//     (golang.org/x/sync/errgroup, bounded). Each ant gets its own RNG
//     stream derived in ant order from the iteration stream, and results are
//     merged in ant order, so the outcome does not depend on Workers.
//   - The pheromone field is only read while ants walk and only written at
//     the iteration boundary.
//
// Complexity:
//
//   - Time:   O(I·A·W·H), I = Iterations, A = Ants.
//   - Memory: O(A·W·H) per iteration for visited sets and paths.
package antcolony
