package procedure

import (
	"fmt"
	"slices"
)

// ActionTag selects how a step is presented and validated.
type ActionTag string

const (
	ActionPortal    ActionTag = "portal"
	ActionForm      ActionTag = "form"
	ActionAadhaar   ActionTag = "aadhaar"
	ActionBank      ActionTag = "bank"
	ActionConfirm   ActionTag = "confirm"
	ActionStatus    ActionTag = "status"
	ActionDocuments ActionTag = "documents"
)

// ActionTags lists every known tag.
var ActionTags = []ActionTag{
	ActionPortal,
	ActionForm,
	ActionAadhaar,
	ActionBank,
	ActionConfirm,
	ActionStatus,
	ActionDocuments,
}

func (a ActionTag) Valid() bool {
	return slices.Contains(ActionTags, a)
}

// Mode is the interaction a client renders for a step.
type Mode string

const (
	ModePortalSimulation Mode = "portal_simulation"
	ModeFormSimulation   Mode = "form_simulation"
	ModeAadhaarEntry     Mode = "aadhaar_entry"
	ModeBankEntry        Mode = "bank_entry"
	ModeConfirmation     Mode = "confirmation"
	ModeStatusCheck      Mode = "status_check"
	ModeDocumentList     Mode = "document_list"
)

// Fields are user-entered values keyed by field name.
type Fields map[string]string

// Input is what a strategy validates: the fields of this request and everything
// entered in the session so far, this request included.
type Input struct {
	Fields  Fields
	Entered Fields
}

// Summary is the masked overview shown before submitting.
type Summary struct {
	Aadhaar  string
	Account  string
	IFSC     string
	BankName string
}

// Validation is the outcome of validating one step.
// Marks maps checklist item indexes of the current step to their new state;
// items not present are left unchanged.
type Validation struct {
	Valid    bool
	Marks    map[int]bool
	Fields   Fields            // cleaned values, e.g. formatted Aadhaar or filled IFSC
	Messages map[string]string // field name to a translation key
	Summary  *Summary
}

// Strategy renders and validates steps of one action tag.
type Strategy struct {
	Mode Mode
	// Items is the number of checklist items Validate may mark.
	Items    int
	Validate func(in Input) Validation
}

// Registry maps action tags to strategies.
type Registry struct {
	strategies map[ActionTag]Strategy
}

func NewRegistry() *Registry {
	return &Registry{strategies: make(map[ActionTag]Strategy)}
}

// Register installs s for tag. Unknown tags and strategies without Validate are rejected.
func (r *Registry) Register(tag ActionTag, s Strategy) error {
	if !tag.Valid() {
		return fmt.Errorf("%w: unknown tag %q", ErrUnhandledAction, tag)
	}
	if s.Validate == nil {
		return fmt.Errorf("%w: %q has no validator", ErrUnhandledAction, tag)
	}
	r.strategies[tag] = s
	return nil
}

// Strategy returns the strategy for tag.
func (r *Registry) Strategy(tag ActionTag) (Strategy, error) {
	s, ok := r.strategies[tag]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnhandledAction, tag)
	}
	return s, nil
}
