package ui

import (
	"dateplan/internal/itinerary"
)

type undoAction struct {
	label  string
	before itinerary.Snapshot
	after  itinerary.Snapshot
}

func (m *Model) pushUndoAction(action undoAction) {
	m.undoStack = append(m.undoStack, action)
	m.redoStack = nil
}

// mutate runs a session change and records it for undo when the state
// actually changed.
func (m *Model) mutate(label string, change func() bool) bool {
	before := m.session.Snapshot()
	ok := change()
	after := m.session.Snapshot()
	if before.Equal(after) {
		return ok
	}
	m.pushUndoAction(undoAction{label: label, before: before, after: after})
	m.logger.Debugw("session changed", "action", label, "stops", after.Len())
	m.refresh()
	return ok
}

func (m *Model) undo() {
	if len(m.undoStack) == 0 {
		m.info = "Nothing to undo"
		return
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.session.Restore(action.before)
	m.redoStack = append(m.redoStack, action)
	m.afterHistoryMove()
	m.info = "Undid: " + action.label
}

func (m *Model) redo() {
	if len(m.redoStack) == 0 {
		m.info = "Nothing to redo"
		return
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.session.Restore(action.after)
	m.undoStack = append(m.undoStack, action)
	m.afterHistoryMove()
	m.info = "Redid: " + action.label
}

func (m *Model) afterHistoryMove() {
	m.drag.Cancel()
	m.error = ""
	m.refresh()
}
