package procedure

import (
	"time"

	"dbt-guide/internal/checklist"
	"dbt-guide/internal/i18n"
)

// --- Content ---

// Case is one scenario of the guide, e.g. fresh seeding or bank change.
type Case struct {
	ID    string               `yaml:"id"`
	Title i18n.LocalizedString `yaml:"title"`
	Steps []Step               `yaml:"steps"`
}

// Step is one screen of a case.
type Step struct {
	Title     i18n.LocalizedString   `yaml:"title"`
	Content   i18n.LocalizedString   `yaml:"content"`
	Checklist []i18n.LocalizedString `yaml:"checklist"`
	Action    ActionTag              `yaml:"action"`
}

// CaseSummary describes a case in one language.
type CaseSummary struct {
	ID    string
	Title string
	Steps int
}

// --- View ---

// StepStatus is the indicator state of a step relative to the current one.
type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepActive    StepStatus = "active"
	StepPending   StepStatus = "pending"
)

// StepIndicator is one entry of the step progress bar.
type StepIndicator struct {
	Number int
	Title  string
	Status StepStatus
}

// ChecklistItem is one checklist entry of the current step.
type ChecklistItem struct {
	Index     int
	Text      string
	Completed bool
}

// View is everything a client needs to render the current step.
type View struct {
	Language       i18n.Language
	CaseID         string
	CaseTitle      string
	Step           int
	TotalSteps     int
	Title          string
	Content        string
	Action         ActionTag
	Mode           Mode
	Checklist      []ChecklistItem
	ChecklistStats checklist.Stats
	CanPrevious    bool
	CanNext        bool
	CanFinish      bool
	Progress       float64 // Step / TotalSteps
	Steps          []StepIndicator
}

// Labels are the localized UI strings that accompany a view.
type Labels struct {
	StepLabel      string
	Previous       string
	Next           string
	Finish         string
	Restart        string
	Statuses       map[StepStatus]string
	CompletedTitle string
	CompletedBody  string
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	CaseID   string
	Language i18n.Language
}

type SelectCaseInput struct {
	SessionID string
	CaseID    string
}

type SetItemInput struct {
	SessionID string
	Step      int // 1-based
	Item      int // 0-based
	Completed bool
}

type ValidateInput struct {
	SessionID string
	Fields    Fields
}

type SwitchLanguageInput struct {
	SessionID string
	Language  string
}

// --- UseCase Outputs ---

type ListCasesOutput struct {
	Language i18n.Language
	Cases    []CaseSummary
}

type SessionOutput struct {
	ID        string
	View      View
	Labels    Labels
	CreatedAt time.Time
}

type NavigateOutput struct {
	Session SessionOutput
	Moved   bool
}

type ValidateOutput struct {
	Session    SessionOutput
	Validation Validation
	// Messages holds the localized text of Validation.Messages.
	Messages map[string]string
}

type ExportChecklistOutput struct {
	Markdown string
	Stats    checklist.Stats
}
