// Package qlearning learns a route across a city grid with tabular
// Q-learning and extracts it as a greedy rollout.
//
// What:
//
//   - State: a grid cell. Actions: Up, Down, Left, Right, in that fixed order.
//   - Reward for a move A→B, see RewardConfig and the table below.
//   - Training: ε-greedy episodes from start until goal or MaxSteps.
//     Exploration picks uniformly among valid actions; exploitation picks
//     argmax Q with a 1e-5 Gaussian jitter to break ties. A move into a
//     building or off the map leaves the agent in place, pulls Q toward
//     InvalidMove and still counts as a step. After every episode
//     ε ← max(ε·EpsilonDecay, EpsilonFloor).
//   - Bellman: Q(s,a) += α·(r + γ·max Q(s',·) − Q(s,a)), with max Q(goal,·) = 0.
//   - Rollout: greedy argmax from start, stopping at goal, on a revisit, on
//     an invalid move or past MaxPathLen cells. Only a rollout that reaches
//     the goal yields a path; otherwise citymap.ErrNoPath.
//
// Reward table:
//
//	B == goal   Goal (+1000), no other term
//	otherwise   Step (−1)
//	            − TrafficWeight·traffic(B)   when traffic(B) > 0
//	            + Shaper.Shape(A, B)         when a shaper is set
//	            ± CompassBonus               by Manhattan progress to the goal
//
// A Learner keeps its Q-table and ε for its whole lifetime, so Train may be
// called repeatedly to refine a policy on an unchanged grid. Solver is the
// stateless front end that builds a fresh Learner per grid.
//
// Complexity:
//
//   - Time:   O(E·S) for E episodes of at most S steps; rollout O(MaxPathLen).
//   - Memory: O(4·W·H) for the Q-table.
package qlearning
