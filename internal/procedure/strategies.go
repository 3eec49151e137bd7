package procedure

import (
	"regexp"
	"strings"
)

// Field names understood by the built-in strategies.
const (
	FieldAadhaar  = "aadhaar"
	FieldName     = "name"
	FieldBank     = "bank"
	FieldAccount  = "account"
	FieldIFSC     = "ifsc"
	FieldHolder   = "holder"
	FieldReviewed = "reviewed"
)

// Translation keys of validation messages.
const (
	MsgAadhaarValid   = "guide.validation.aadhaar_valid"
	MsgAadhaarLength  = "guide.validation.aadhaar_length"
	MsgNameRequired   = "guide.validation.name_required"
	MsgAccountInvalid = "guide.validation.account_invalid"
	MsgIFSCInvalid    = "guide.validation.ifsc_invalid"
	MsgBankUnknown    = "guide.validation.bank_unknown"
	MsgHolderRequired = "guide.validation.holder_required"
	MsgReviewPending  = "guide.validation.review_pending"
	MsgSubmitted      = "guide.validation.submitted"
)

// Bank is one of the banks offered in the bank step.
type Bank struct {
	Code string
	Name string
	IFSC string
}

// Banks lists the selectable banks with their sample IFSC codes.
var Banks = []Bank{
	{Code: "sbi", Name: "State Bank of India", IFSC: "SBIN0001234"},
	{Code: "hdfc", Name: "HDFC Bank", IFSC: "HDFC0001234"},
	{Code: "icici", Name: "ICICI Bank", IFSC: "ICIC0001234"},
	{Code: "pnb", Name: "Punjab National Bank", IFSC: "PUNB0001234"},
}

var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

// sample values shown in the confirmation summary when nothing was entered
var sampleSummary = Summary{
	Aadhaar:  "XXXX-XXXX-1234",
	Account:  "XXXXXXXXX1234",
	IFSC:     "SBIN0001234",
	BankName: "State Bank of India",
}

// DefaultRegistry returns a registry with a strategy for every action tag.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for tag, s := range map[ActionTag]Strategy{
		ActionPortal:    {Mode: ModePortalSimulation, Validate: displayOnly},
		ActionForm:      {Mode: ModeFormSimulation, Validate: displayOnly},
		ActionStatus:    {Mode: ModeStatusCheck, Validate: displayOnly},
		ActionDocuments: {Mode: ModeDocumentList, Validate: displayOnly},
		ActionAadhaar:   {Mode: ModeAadhaarEntry, Items: 2, Validate: validateAadhaar},
		ActionBank:      {Mode: ModeBankEntry, Items: 3, Validate: validateBank},
		ActionConfirm:   {Mode: ModeConfirmation, Items: 1, Validate: validateConfirm},
	} {
		if err := r.Register(tag, s); err != nil {
			panic(err)
		}
	}
	return r
}

func displayOnly(Input) Validation {
	return Validation{Valid: true}
}

func newValidation() Validation {
	return Validation{
		Valid:    true,
		Marks:    make(map[int]bool),
		Fields:   make(Fields),
		Messages: make(map[string]string),
	}
}

// validateAadhaar marks item 0 for a 12 digit number and item 1 for a name.
func validateAadhaar(in Input) Validation {
	v := newValidation()

	if raw, ok := in.Fields[FieldAadhaar]; ok {
		digits := onlyDigits(raw)
		if len(digits) > 12 {
			digits = digits[:12]
		}
		v.Fields[FieldAadhaar] = FormatAadhaar(digits)
		switch {
		case len(digits) == 12:
			v.Marks[0] = true
			v.Messages[FieldAadhaar] = MsgAadhaarValid
		case len(digits) > 0:
			v.Marks[0] = false
			v.Valid = false
			v.Messages[FieldAadhaar] = MsgAadhaarLength
		default:
			v.Marks[0] = false
			v.Valid = false
		}
	}

	if name, ok := in.Fields[FieldName]; ok {
		name = strings.TrimSpace(name)
		v.Fields[FieldName] = name
		v.Marks[1] = name != ""
		if name == "" {
			v.Valid = false
			v.Messages[FieldName] = MsgNameRequired
		}
	}

	return v
}

// validateBank marks item 0 for a 9 to 18 digit account, item 1 for a well formed IFSC
// and item 2 for a holder name. Choosing a bank fills its IFSC unless one was typed.
func validateBank(in Input) Validation {
	v := newValidation()

	ifsc, ifscGiven := in.Fields[FieldIFSC]
	if code, ok := in.Fields[FieldBank]; ok {
		code = strings.ToLower(strings.TrimSpace(code))
		v.Fields[FieldBank] = code
		if bank, found := BankByCode(code); found {
			if !ifscGiven || strings.TrimSpace(ifsc) == "" {
				ifsc, ifscGiven = bank.IFSC, true
			}
		} else {
			v.Valid = false
			v.Messages[FieldBank] = MsgBankUnknown
		}
	}

	if raw, ok := in.Fields[FieldAccount]; ok {
		account := strings.TrimSpace(raw)
		v.Fields[FieldAccount] = account
		valid := validAccount(account)
		v.Marks[0] = valid
		if !valid {
			v.Valid = false
			v.Messages[FieldAccount] = MsgAccountInvalid
		}
	}

	if ifscGiven {
		ifsc = strings.ToUpper(strings.TrimSpace(ifsc))
		v.Fields[FieldIFSC] = ifsc
		valid := ifscPattern.MatchString(ifsc)
		v.Marks[1] = valid
		if !valid {
			v.Valid = false
			v.Messages[FieldIFSC] = MsgIFSCInvalid
		}
	}

	if holder, ok := in.Fields[FieldHolder]; ok {
		holder = strings.TrimSpace(holder)
		v.Fields[FieldHolder] = holder
		v.Marks[2] = holder != ""
		if holder == "" {
			v.Valid = false
			v.Messages[FieldHolder] = MsgHolderRequired
		}
	}

	return v
}

// validateConfirm builds the masked summary and marks item 0 once the details were reviewed.
func validateConfirm(in Input) Validation {
	v := newValidation()
	s := buildSummary(in.Entered)
	v.Summary = &s

	reviewed := strings.EqualFold(strings.TrimSpace(in.Fields[FieldReviewed]), "true")
	if _, ok := in.Fields[FieldReviewed]; ok {
		v.Marks[0] = reviewed
	}
	if reviewed {
		v.Messages[FieldReviewed] = MsgSubmitted
	} else {
		v.Valid = false
		v.Messages[FieldReviewed] = MsgReviewPending
	}
	return v
}

func buildSummary(entered Fields) Summary {
	s := sampleSummary
	if d := onlyDigits(entered[FieldAadhaar]); len(d) == 12 {
		s.Aadhaar = "XXXX-XXXX-" + d[8:]
	}
	if a := entered[FieldAccount]; validAccount(a) {
		s.Account = strings.Repeat("X", len(a)-4) + a[len(a)-4:]
	}
	if ifsc := entered[FieldIFSC]; ifscPattern.MatchString(ifsc) {
		s.IFSC = ifsc
	}
	if bank, ok := BankByCode(entered[FieldBank]); ok {
		s.BankName = bank.Name
	}
	return s
}

// BankByCode finds a bank by its short code.
func BankByCode(code string) (Bank, bool) {
	for _, b := range Banks {
		if b.Code == code {
			return b, true
		}
	}
	return Bank{}, false
}

// FormatAadhaar groups up to 12 digits as XXXX-XXXX-XXXX.
func FormatAadhaar(digits string) string {
	switch {
	case len(digits) > 8:
		return digits[:4] + "-" + digits[4:8] + "-" + digits[8:]
	case len(digits) > 4:
		return digits[:4] + "-" + digits[4:]
	default:
		return digits
	}
}

// validAccount reports whether s is a 9 to 18 digit account number.
func validAccount(s string) bool {
	return len(s) >= 9 && len(s) <= 18 && onlyDigits(s) == s
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
