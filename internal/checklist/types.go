package checklist

// Checkbox represents a single checkbox line in a markdown checklist
type Checkbox struct {
	Line    int    // Index among the checkboxes of the document
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string // Checkbox text content
}

// Stats represents checklist progress
type Stats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"` // Completion percentage (0-100)
}

// Section is one titled group of checkboxes in a rendered document.
type Section struct {
	Title string
	Items []Checkbox
}
