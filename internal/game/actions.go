package game

// Action is a player input handled by Session.Apply. The set of variants is
// closed: each one embeds the unexported marker so the dispatcher's type
// switch covers every action that can exist.
type Action interface {
	isAction()
}

// SelectTile selects an unused tile, or combines it with the previously
// selected one. Selecting the already-selected tile clears the selection.
type SelectTile struct {
	ID int
}

// Navigate switches the visible page. It never touches tiles or selection.
type Navigate struct {
	Page Page
}

// Rollback is the undo action. It currently performs no state change; the
// binding and dispatch path exist ahead of actual undo semantics.
// TODO: keep an action history on the Session and restore the previous
// combination here.
type Rollback struct{}

// SetPlayerName stores the given name verbatim. No validation, no length cap.
type SetPlayerName struct {
	Name string
}

// SubmitScore is the handoff point for (playerName, score). The session
// itself does not change; the platform layer forwards the pair to the
// ranking collaborator.
type SubmitScore struct{}

func (SelectTile) isAction()    {}
func (Navigate) isAction()      {}
func (Rollback) isAction()      {}
func (SetPlayerName) isAction() {}
func (SubmitScore) isAction()   {}
