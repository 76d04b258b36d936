package cde

import (
	"fmt"

	"github.com/ChicagoDave/nestcde/pkg/hazard"
)

// mutationKind classifies one entry of the engine's append-only change
// log, used to roll a mutation back during Restore (spec §4.H).
type mutationKind int

const (
	kindRegister mutationKind = iota
	kindToggle
	kindForget
)

// mutation records one state change plus what's needed to reverse it.
// The log never records geometry, only key references and the prior
// active flag for toggles, so rollback stays O(changes) rather than
// O(hazard count).
type mutation struct {
	kind       mutationKind
	key        hazard.HazardKey
	prevActive bool
}

// Snapshot returns a token identifying the current point in the
// engine's change log. Restoring to this token later is a no-op if
// nothing has changed in between (spec property 3: restore(snapshot())
// leaves the engine unchanged).
func (e *Engine) Snapshot() int {
	return len(e.log)
}

// Restore rewinds the engine to the state captured by token, undoing
// every logged mutation since in reverse order. Nested snapshots
// restore LIFO: restoring to an older token truncates the log below
// every newer one. A token is rejected only when it lies beyond the
// current log length; once new mutations have grown the log back past
// an unwound token, that token is accepted again and rewinds to the
// current log position it names, not to the state it was taken at.
//
// Deregistrations are not undone: a hazard's key becomes permanently
// stale the moment it is deregistered (spec §4.F), and resurrecting it
// on restore would require minting a fresh key that stale references
// captured before the deregistration still could not use. Restoring
// past a deregistration silently leaves the hazard gone; this is a
// deliberate narrowing of "restore reverses every mutation" to
// "restore reverses every mutation that doesn't already carry its own
// irreversibility guarantee."
func (e *Engine) Restore(token int) error {
	if token < 0 || token > len(e.log) {
		return fmt.Errorf("cde: invalid snapshot token %d (log length %d)", token, len(e.log))
	}
	for len(e.log) > token {
		m := e.log[len(e.log)-1]
		e.log = e.log[:len(e.log)-1]

		if _, err := e.registry.Get(m.key); err != nil {
			// Deregistered after this entry was logged: nothing is left
			// to undo for this key.
			continue
		}
		switch m.kind {
		case kindToggle:
			if err := e.registry.SetActive(m.key, m.prevActive); err != nil {
				return fmt.Errorf("cde: restoring activation of %s: %w", m.key, err)
			}
		case kindRegister:
			if err := e.registry.Deregister(m.key); err != nil {
				return fmt.Errorf("cde: restoring registration of %s: %w", m.key, err)
			}
		case kindForget:
			// Permanent; nothing to undo.
		}
	}
	return nil
}
