package usecase

import (
	"context"

	"dbt-guide/internal/procedure"
)

// Next moves one step forward. On the last step nothing changes and Moved is false.
func (uc *implUseCase) Next(ctx context.Context, id string) (procedure.NavigateOutput, error) {
	return uc.navigate(ctx, id, (*procedure.Navigator).Next)
}

// Previous moves one step back. On the first step nothing changes and Moved is false.
func (uc *implUseCase) Previous(ctx context.Context, id string) (procedure.NavigateOutput, error) {
	return uc.navigate(ctx, id, (*procedure.Navigator).Previous)
}

func (uc *implUseCase) navigate(ctx context.Context, id string, move func(*procedure.Navigator) bool) (procedure.NavigateOutput, error) {
	var out procedure.NavigateOutput
	err := uc.withSession(ctx, id, func(s *procedure.Session) error {
		out.Moved = move(s.Navigator)
		out.Session = uc.toSessionOutput(s)
		return nil
	})
	return out, err
}

// Restart returns to step 1 of the current case with nothing marked.
func (uc *implUseCase) Restart(ctx context.Context, id string) (procedure.SessionOutput, error) {
	var out procedure.SessionOutput
	err := uc.withSession(ctx, id, func(s *procedure.Session) error {
		s.Navigator.Restart()
		uc.l.Infof(ctx, "procedure.usecase.Restart: id=%s case=%s", s.ID, s.Navigator.CaseID())
		out = uc.toSessionOutput(s)
		return nil
	})
	return out, err
}
