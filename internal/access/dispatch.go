package access

import (
	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/event"
	"github.com/dshills/mnemonic/internal/input/key"
)

// ProcessResult reports what a key press matched.
type ProcessResult int

const (
	// NoMatch means no targetable candidate existed; nothing was raised.
	NoMatch ProcessResult = iota

	// LastMatch means the chosen element was the final candidate.
	LastMatch

	// MoreMatches means candidates after the chosen one remain.
	MoreMatches
)

// String returns the result name.
func (r ProcessResult) String() string {
	switch r {
	case NoMatch:
		return "no-match"
	case LastMatch:
		return "last-match"
	case MoreMatches:
		return "more-matches"
	default:
		return "unknown"
	}
}

// Engine selects one element from the scoped, sorted candidates of a key
// press and raises the invocation event on it.
type Engine struct {
	arena    *element.Arena
	resolver *Resolver
	router   *event.Router
}

// NewEngine creates an engine over the given resolver and router.
func NewEngine(arena *element.Arena, resolver *Resolver, router *event.Router) *Engine {
	return &Engine{
		arena:    arena,
		resolver: resolver,
		router:   router,
	}
}

// ProcessKey walks the candidates once and raises the invoke event on the
// chosen one.
//
// Non-targetable candidates are skipped entirely: never chosen, never
// counted as additional matches. The first targetable candidate is the
// initial choice; each later targetable candidate marks the press as
// multiple, and the choice advances to it when the previously considered
// targetable candidate held focus. That is the cycling rule: pressing the
// same mnemonic repeatedly moves the selection forward once the previous
// selection has received focus.
//
// existsElsewhere folds in the host's knowledge that the key is also bound
// outside this scope; it only widens the IsMultiple flag.
func (e *Engine) ProcessKey(targets []*element.Node, accessKey string, existsElsewhere bool) ProcessResult {
	if len(targets) == 0 {
		return NoMatch
	}

	var chosen *element.Node
	chosenIdx := -1
	isSingleTarget := true
	lastWasFocused := false

	for i, t := range targets {
		if !t.IsTargetable() {
			continue
		}
		if chosen == nil {
			chosen = t
			chosenIdx = i
		} else {
			isSingleTarget = false
			if lastWasFocused {
				chosen = t
				chosenIdx = i
			}
		}
		lastWasFocused = e.arena.IsFocused(t)
	}

	if chosen == nil {
		return NoMatch
	}

	e.router.RaiseAccessKeyInvoke(chosen, accessKey, !isSingleTarget || existsElsewhere)

	if chosenIdx == len(targets)-1 {
		return LastMatch
	}
	return MoreMatches
}

// Dispatch is the top-level entry point for one typed character: normalize,
// resolve scope, sort by hierarchy, process. It reports whether the press
// was handled, so an unmatched key can keep propagating to other handlers.
func (e *Engine) Dispatch(rawKey string, sender *element.Node, existsElsewhere bool) bool {
	nk, err := key.Normalize(rawKey)
	if err != nil {
		return false
	}
	targets := SortByHierarchy(e.resolver.ResolveTargets(nk, sender))
	return e.ProcessKey(targets, nk, existsElsewhere) != NoMatch
}
