package tracker

import (
	"errors"
	"strings"
)

// EmptyTitleMessage is shown next to the title field when a submission has
// no title.
const EmptyTitleMessage = "Please enter a task title."

var ErrEmptyTitle = errors.New("tracker: task title is empty")

// ValidateSubmission trims both fields of a submitted form. AddTask itself
// accepts anything, so every event source runs input through here first.
func ValidateSubmission(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return "", description, ErrEmptyTitle
	}
	return title, description, nil
}
