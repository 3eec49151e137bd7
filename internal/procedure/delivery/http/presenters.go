package http

import (
	"dbt-guide/internal/checklist"
	"dbt-guide/internal/i18n"
	"dbt-guide/internal/procedure"
	"dbt-guide/pkg/response"
)

// --- Request DTOs ---

type createSessionReq struct {
	CaseID   string `json:"case_id"`
	Language string `json:"lang"`
}

func (r createSessionReq) validate() error {
	if r.Language == "" {
		return nil
	}
	_, err := i18n.Parse(r.Language)
	return err
}

func (r createSessionReq) toInput() procedure.CreateSessionInput {
	return procedure.CreateSessionInput{CaseID: r.CaseID, Language: i18n.Language(r.Language)}
}

// ---

type selectCaseReq struct {
	SessionID string `json:"-"` // populated from URI param
	CaseID    string `json:"case_id" binding:"required"`
}

func (r selectCaseReq) validate() error { return nil }

func (r selectCaseReq) toInput() procedure.SelectCaseInput {
	return procedure.SelectCaseInput{SessionID: r.SessionID, CaseID: r.CaseID}
}

// ---

type setItemReq struct {
	SessionID string `json:"-"` // populated from URI params
	Step      int    `json:"-"`
	Item      int    `json:"-"`
	Completed *bool  `json:"completed" binding:"required"`
}

func (r setItemReq) validate() error {
	if r.Step < 1 {
		return errInvalidStep
	}
	if r.Item < 0 {
		return errInvalidItem
	}
	return nil
}

func (r setItemReq) toInput() procedure.SetItemInput {
	return procedure.SetItemInput{
		SessionID: r.SessionID,
		Step:      r.Step,
		Item:      r.Item,
		Completed: *r.Completed,
	}
}

// ---

type validateReq struct {
	SessionID string            `json:"-"` // populated from URI param
	Fields    map[string]string `json:"fields"`
}

func (r validateReq) validate() error { return nil }

func (r validateReq) toInput() procedure.ValidateInput {
	return procedure.ValidateInput{SessionID: r.SessionID, Fields: procedure.Fields(r.Fields)}
}

// ---

type switchLanguageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Language  string `json:"lang" binding:"required"`
}

func (r switchLanguageReq) validate() error { return nil }

func (r switchLanguageReq) toInput() procedure.SwitchLanguageInput {
	return procedure.SwitchLanguageInput{SessionID: r.SessionID, Language: r.Language}
}

// --- Response DTOs ---

type caseResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Steps int    `json:"steps"`
}

type listCasesResp struct {
	Language string     `json:"lang"`
	Cases    []caseResp `json:"cases"`
}

func (h *handler) newListCasesResp(out procedure.ListCasesOutput) listCasesResp {
	cases := make([]caseResp, len(out.Cases))
	for i, c := range out.Cases {
		cases[i] = caseResp{ID: c.ID, Title: c.Title, Steps: c.Steps}
	}
	return listCasesResp{Language: string(out.Language), Cases: cases}
}

type checklistItemResp struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type stepIndicatorResp struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Label  string `json:"label"`
}

type labelsResp struct {
	StepLabel      string `json:"step_label"`
	Previous       string `json:"previous"`
	Next           string `json:"next"`
	Finish         string `json:"finish"`
	Restart        string `json:"restart"`
	CompletedTitle string `json:"completed_title"`
	CompletedBody  string `json:"completed_body"`
}

type viewResp struct {
	CaseID      string              `json:"case_id"`
	CaseTitle   string              `json:"case_title"`
	Step        int                 `json:"step"`
	TotalSteps  int                 `json:"total_steps"`
	Title       string              `json:"title"`
	Content     string              `json:"content"`
	Action      string              `json:"action"`
	Mode        string              `json:"mode"`
	Checklist   []checklistItemResp `json:"checklist"`
	Stats       checklist.Stats     `json:"checklist_stats"`
	CanPrevious bool                `json:"can_previous"`
	CanNext     bool                `json:"can_next"`
	CanFinish   bool                `json:"can_finish"`
	Progress    float64             `json:"progress"`
	Steps       []stepIndicatorResp `json:"steps"`
}

type sessionResp struct {
	ID        string            `json:"id"`
	Language  string            `json:"lang"`
	RTL       bool              `json:"rtl"`
	View      viewResp          `json:"view"`
	Labels    labelsResp        `json:"labels"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newSessionResp(out procedure.SessionOutput) sessionResp {
	v := out.View
	items := make([]checklistItemResp, len(v.Checklist))
	for i, c := range v.Checklist {
		items[i] = checklistItemResp{Index: c.Index, Text: c.Text, Completed: c.Completed}
	}
	steps := make([]stepIndicatorResp, len(v.Steps))
	for i, s := range v.Steps {
		steps[i] = stepIndicatorResp{
			Number: s.Number,
			Title:  s.Title,
			Status: string(s.Status),
			Label:  out.Labels.Statuses[s.Status],
		}
	}

	return sessionResp{
		ID:       out.ID,
		Language: string(v.Language),
		RTL:      i18n.IsRTL(v.Language),
		View: viewResp{
			CaseID:      v.CaseID,
			CaseTitle:   v.CaseTitle,
			Step:        v.Step,
			TotalSteps:  v.TotalSteps,
			Title:       v.Title,
			Content:     v.Content,
			Action:      string(v.Action),
			Mode:        string(v.Mode),
			Checklist:   items,
			Stats:       v.ChecklistStats,
			CanPrevious: v.CanPrevious,
			CanNext:     v.CanNext,
			CanFinish:   v.CanFinish,
			Progress:    v.Progress,
			Steps:       steps,
		},
		Labels: labelsResp{
			StepLabel:      out.Labels.StepLabel,
			Previous:       out.Labels.Previous,
			Next:           out.Labels.Next,
			Finish:         out.Labels.Finish,
			Restart:        out.Labels.Restart,
			CompletedTitle: out.Labels.CompletedTitle,
			CompletedBody:  out.Labels.CompletedBody,
		},
		CreatedAt: response.DateTime(out.CreatedAt),
	}
}

type navigateResp struct {
	Moved   bool        `json:"moved"`
	Session sessionResp `json:"session"`
}

func (h *handler) newNavigateResp(out procedure.NavigateOutput) navigateResp {
	return navigateResp{Moved: out.Moved, Session: newSessionResp(out.Session)}
}

type summaryResp struct {
	Aadhaar  string `json:"aadhaar"`
	Account  string `json:"account"`
	IFSC     string `json:"ifsc"`
	BankName string `json:"bank_name"`
}

type validateResp struct {
	Valid    bool              `json:"valid"`
	Fields   map[string]string `json:"fields,omitempty"`
	Messages map[string]string `json:"messages,omitempty"`
	Summary  *summaryResp      `json:"summary,omitempty"`
	Session  sessionResp       `json:"session"`
}

func (h *handler) newValidateResp(out procedure.ValidateOutput) validateResp {
	resp := validateResp{
		Valid:    out.Validation.Valid,
		Fields:   out.Validation.Fields,
		Messages: out.Messages,
		Session:  newSessionResp(out.Session),
	}
	if s := out.Validation.Summary; s != nil {
		resp.Summary = &summaryResp{Aadhaar: s.Aadhaar, Account: s.Account, IFSC: s.IFSC, BankName: s.BankName}
	}
	return resp
}

type exportChecklistResp struct {
	Markdown string          `json:"markdown"`
	Stats    checklist.Stats `json:"stats"`
}
