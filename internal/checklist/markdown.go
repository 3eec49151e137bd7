package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^(\s*)- \[([ xX])\] (.+)$`
)

var checkboxRe = regexp.MustCompile(CheckboxPattern)

// Render writes sections as a markdown document: a "## " heading per titled section
// followed by one checkbox line per item.
func Render(title string, sections []Section) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n")
	}
	for _, s := range sections {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString("## " + s.Title + "\n")
		}
		for _, item := range s.Items {
			state := CheckboxUnchecked
			if item.Checked {
				state = CheckboxChecked
			}
			b.WriteString(item.Indent + state + " " + strings.TrimSpace(item.Text) + "\n")
		}
	}
	return b.String()
}

// ParseCheckboxes extracts all checkboxes from markdown content.
func ParseCheckboxes(content string) []Checkbox {
	matches := checkboxRe.FindAllStringSubmatch(content, -1)
	checkboxes := make([]Checkbox, 0, len(matches))
	for i, match := range matches {
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
		})
	}
	return checkboxes
}

// GetStats calculates checklist statistics of a markdown document.
func GetStats(content string) Stats {
	checkboxes := ParseCheckboxes(content)
	flags := make([]bool, len(checkboxes))
	for i, cb := range checkboxes {
		flags[i] = cb.Checked
	}
	return statsOf(flags)
}
