package qlearning

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/logging"
	"github.com/katalvlaran/swarmroute/internal/rng"
)

// logInterval is the number of episodes between two debug progress lines.
const logInterval = 500

// jitter is the standard deviation of the tie-breaking noise added to Q-values
// when exploiting during training.
const jitter = 1e-5

// gridChecker is implemented by shapers that depend on the grid shape.
type gridChecker interface {
	Check(g *citymap.Grid) error
}

// Learner owns a Q-table for one grid. It is not safe for concurrent use.
type Learner struct {
	grid     *citymap.Grid
	opts     Options
	q        []float64 // Index(cell)*NumActions + action
	epsilon  float64
	rand     *rand.Rand
	episodes int
}

// NewLearner validates g and opts and returns a Learner with a zero Q-table
// and ε = opts.Epsilon.
func NewLearner(g *citymap.Grid, opts Options) (*Learner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if c, ok := opts.Reward.Shaper.(gridChecker); ok {
		if err := c.Check(g); err != nil {
			return nil, err
		}
	}
	return &Learner{
		grid:    g,
		opts:    opts,
		q:       make([]float64, g.Width*g.Height*NumActions),
		epsilon: opts.Epsilon,
		rand:    rng.FromSeed(opts.Seed),
	}, nil
}

// Epsilon returns the current exploration rate.
func (l *Learner) Epsilon() float64 { return l.epsilon }

// Episodes returns the number of episodes trained so far.
func (l *Learner) Episodes() int { return l.episodes }

// Q returns the current estimate for taking a in c. Cells outside the grid read as 0.
func (l *Learner) Q(c citymap.Cell, a Action) float64 {
	if !l.grid.InBounds(c) {
		return 0
	}
	return l.q[l.slot(c, a)]
}

// Values returns the four action values of c in enumeration order.
func (l *Learner) Values(c citymap.Cell) [NumActions]float64 {
	var out [NumActions]float64
	if l.grid.InBounds(c) {
		copy(out[:], l.q[l.slot(c, Up):l.slot(c, Up)+NumActions])
	}
	return out
}

func (l *Learner) slot(c citymap.Cell, a Action) int {
	return l.grid.Index(c)*NumActions + int(a)
}

// Reward evaluates the reward of moving from → to, to being a valid cell.
func (l *Learner) Reward(from, to citymap.Cell) float64 {
	rc := l.opts.Reward
	goal := l.grid.Goal()
	if to == goal {
		return rc.Goal
	}

	r := rc.Step
	if t := l.grid.Traffic(to); t > 0 {
		r -= rc.TrafficWeight * t
	}
	if rc.Shaper != nil {
		r += rc.Shaper.Shape(from, to)
	}
	if to.Manhattan(goal) < from.Manhattan(goal) {
		r += rc.CompassBonus
	} else {
		r -= rc.CompassBonus
	}
	return r
}

// Solve trains for Options.Episodes and returns the greedy rollout. When
// start equals goal it returns the single-cell path without training.
func (l *Learner) Solve() (citymap.Path, error) {
	if l.grid.Start() == l.grid.Goal() {
		return citymap.Path{l.grid.Start()}, nil
	}
	l.Train(l.opts.Episodes)
	return l.Rollout()
}

// Train runs n more episodes on the existing Q-table.
func (l *Learner) Train(n int) {
	log := logging.OrDiscard(l.opts.Logger)
	reached := 0
	for i := 0; i < n; i++ {
		s := l.episode()
		if s.ReachedGoal {
			reached++
		}
		if l.opts.OnEpisode != nil {
			l.opts.OnEpisode(s)
		}
		if (i+1)%logInterval == 0 || i == n-1 {
			log.Debug("q-learning progress",
				"episode", s.Episode+1, "epsilon", l.epsilon, "reached_goal", reached, "last_steps", s.Steps)
		}
	}
}

// episode runs one ε-greedy trajectory and decays ε afterwards.
func (l *Learner) episode() EpisodeStats {
	g := l.grid
	o := l.opts
	goal := g.Goal()
	cur := g.Start()
	eps := l.epsilon

	var ret float64
	steps := 0
	for cur != goal && steps < o.MaxSteps {
		var a Action
		if l.rand.Float64() < eps {
			valid := l.validActions(cur)
			if len(valid) == 0 {
				break
			}
			a = valid[rng.Pick(l.rand, len(valid))]
		} else {
			a = l.argmax(cur, true)
		}
		steps++

		k := l.slot(cur, a)
		next := a.Apply(cur)
		if !g.IsPassable(next) {
			l.q[k] += o.LearningRate * (o.Reward.InvalidMove - l.q[k])
			ret += o.Reward.InvalidMove
			continue
		}

		r := l.Reward(cur, next)
		future := 0.0
		if next != goal {
			future = l.maxQ(next)
		}
		l.q[k] += o.LearningRate * (r + o.Discount*future - l.q[k])
		ret += r
		cur = next
	}

	s := EpisodeStats{Episode: l.episodes, Steps: steps, Epsilon: eps, ReachedGoal: cur == goal, Return: ret}
	l.episodes++
	l.epsilon = math.Max(l.epsilon*o.EpsilonDecay, o.EpsilonFloor)
	return s
}

// Rollout follows the greedy policy from start and returns the path if it
// reaches the goal, or citymap.ErrNoPath on a revisit, an invalid move or
// when the path would exceed MaxPathLen cells.
func (l *Learner) Rollout() (citymap.Path, error) {
	g := l.grid
	cur, goal := g.Start(), g.Goal()
	path := citymap.Path{cur}
	visited := map[citymap.Cell]bool{cur: true}

	for cur != goal {
		if len(path) >= l.opts.MaxPathLen {
			return nil, citymap.ErrNoPath
		}
		next := l.argmax(cur, false).Apply(cur)
		if visited[next] || !g.IsPassable(next) {
			return nil, citymap.ErrNoPath
		}
		path = append(path, next)
		visited[next] = true
		cur = next
	}
	return path, nil
}

func (l *Learner) validActions(c citymap.Cell) []Action {
	out := make([]Action, 0, NumActions)
	for _, a := range Actions {
		if l.grid.IsPassable(a.Apply(c)) {
			out = append(out, a)
		}
	}
	return out
}

// argmax returns the best action at c; ties go to the first action unless
// noisy adds the training jitter.
func (l *Learner) argmax(c citymap.Cell, noisy bool) Action {
	base := l.slot(c, Up)
	best, bestV := Up, math.Inf(-1)
	for _, a := range Actions {
		v := l.q[base+int(a)]
		if noisy {
			v += l.rand.NormFloat64() * jitter
		}
		if v > bestV {
			best, bestV = a, v
		}
	}
	return best
}

func (l *Learner) maxQ(c citymap.Cell) float64 {
	base := l.slot(c, Up)
	m := l.q[base]
	for i := 1; i < NumActions; i++ {
		m = math.Max(m, l.q[base+i])
	}
	return m
}
