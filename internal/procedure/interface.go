package procedure

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListCases(ctx context.Context) (ListCasesOutput, error)

	// Guide sessions
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionOutput, error)
	GetSession(ctx context.Context, id string) (SessionOutput, error)
	DeleteSession(ctx context.Context, id string) error
	SwitchLanguage(ctx context.Context, input SwitchLanguageInput) (SessionOutput, error)

	// Navigation
	Next(ctx context.Context, id string) (NavigateOutput, error)
	Previous(ctx context.Context, id string) (NavigateOutput, error)
	Restart(ctx context.Context, id string) (SessionOutput, error)
	SelectCase(ctx context.Context, input SelectCaseInput) (SessionOutput, error)

	// Checklist
	SetItem(ctx context.Context, input SetItemInput) (SessionOutput, error)
	Validate(ctx context.Context, input ValidateInput) (ValidateOutput, error)
	ExportChecklist(ctx context.Context, id string) (ExportChecklistOutput, error)
}
