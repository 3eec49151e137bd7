package procedure

import "errors"

var (
	ErrCaseNotFound         = errors.New("procedure case not found")
	ErrInvalidStepIndex     = errors.New("invalid step index")
	ErrInvalidChecklistItem = errors.New("invalid checklist item")
	ErrUnhandledAction      = errors.New("no strategy registered for action")
	ErrInvalidCase          = errors.New("invalid procedure case")
	ErrNoCases              = errors.New("no procedure cases loaded")

	ErrSessionNotFound = errors.New("guide session not found")
)
