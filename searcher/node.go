package searcher

import (
	"durak/game"
)

type node struct {
	action   game.Action // action that led here from the parent
	player   int         // position of the player who took action
	parent   *node
	children []*node
	visits   float64
	utility  float64
}

func newNode(parent *node, action game.Action, player int) *node {
	return &node{
		action: action,
		player: player,
		parent: parent,
	}
}

func (n *node) isFullyExpanded(actions []game.Action) bool {
	return len(n.children) >= len(actions)
}

// untried returns the legal actions that have no child yet, in the order given.
func (n *node) untried(actions []game.Action) []game.Action {
	explored := make(map[string]bool, len(n.children))
	for _, child := range n.children {
		explored[child.action.Key()] = true
	}
	var untried []game.Action
	for _, a := range actions {
		if !explored[a.Key()] {
			untried = append(untried, a)
		}
	}
	return untried
}

func (n *node) expand(action game.Action, player int) *node {
	child := newNode(n, action, player)
	n.children = append(n.children, child)
	return child
}

// selectChild returns the child with the highest UCB1 score, the first one on ties.
func (n *node) selectChild() *node {
	policy := newUCT(CSquared, n.visits)
	var best *node
	bestScore := 0.0
	for _, child := range n.children {
		score := policy.evaluate(child.utility, child.visits)
		if best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// update records one playout outcome from this node's player's point of view.
func (n *node) update(loser int, hasLoser bool) *node {
	n.visits++
	if hasLoser && n.player == loser {
		n.utility += LOSS
	} else {
		n.utility += WIN
	}
	return n.parent
}
