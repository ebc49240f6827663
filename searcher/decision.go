package searcher

import (
	"checkers/game"
	"math"
	"sync"
)

// decision is a tree node for a position. Rewards are kept from the
// perspective of mover, the player whose move led to the node, so a parent
// picks the child that is best for the player choosing.
type decision struct {
	sync.RWMutex
	parent     *decision
	mover      string
	player     string
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, mover string, state game.State) *decision {
	moves := state.LegalMoves()
	unexplored := make([]game.Move, len(moves))
	copy(unexplored, moves)

	return &decision{
		parent:     parent,
		mover:      mover,
		player:     state.Player(),
		unexplored: unexplored,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level. It expands an untried move if there is
// one (selected is false), otherwise selects the child with the highest UCT
// value (selected is true). A terminal node returns itself. The returned
// child carries a virtual loss until it is backed up.
func (d *decision) SelectOrExpand(state game.State) (child *decision, childState game.State, selected bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		last := len(d.unexplored) - 1
		move := d.unexplored[last]
		d.unexplored = d.unexplored[:last]

		childState = state.Play(move)
		child = newDecision(d, d.player, childState)
		child.applyLoss()
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) pickChild() int {
	policy := newUCT(CSquared, math.Max(d.visits, 1))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(policy)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) score(policy uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.value(d.rewards, d.visits)
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

// Backup records an outcome worth score to player and returns the parent.
func (d *decision) Backup(player string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= Loss
		d.visits--
	}

	if d.mover == player {
		d.rewards += score
	} else {
		d.rewards -= score
	}
	d.visits++

	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy returns the share of visits per explored move.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	total := 0.0
	for _, child := range d.children {
		total += child.Visits()
	}

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		if total == 0 {
			policy[d.explored[i]] = 0
			continue
		}
		policy[d.explored[i]] = child.Visits() / total
	}
	return policy
}
