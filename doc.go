// Package swarmroute finds routes through congested city grids with
// swarm intelligence and reinforcement learning.
//
// 🚦 What is inside?
//
//	• citymap   – grid of roads and buildings with traffic, fields and paths
//	• citygen   – seeded Manhattan-style city generator with traffic jams
//	• slimemold – slime mold swarm producing a conductivity field
//	• antcolony – ant colony path search with optional parallel ants
//	• qlearning – tabular Q-learning with explicit, pluggable reward terms
//	• hybrid    – slime mold conductivity feeding a Q-learning or ant finisher
//	• baseline  – exact BFS and traffic-priced Dijkstra reference routes
//	• route     – one Strategy interface over every engine, plus comparison
//	• export    – JSON snapshots for renderers and re-solving
//
// ✨ Guarantees
//
//   - Deterministic – every engine takes an explicit seed.
//   - Explicit failures – no route is citymap.ErrNoPath, never a silent nil.
//   - Caller-owned state – a Grid is a handle you pass in; nothing global.
//
// Quick example:
//
//	g, _ := citygen.New(citygen.WithSeed(7)).Generate()
//	res, err := hybrid.New(hybrid.WithEpisodes(hybrid.FastEpisodes)).Run(g)
//	if errors.Is(err, citymap.ErrNoPath) { ... }
//	fmt.Println(res.Path.Len(), res.Conductivity.Max())
//
// The swarmroute command (cmd/swarmroute) wraps the same flow:
//
//	go install github.com/katalvlaran/swarmroute/cmd/swarmroute@latest
package swarmroute
