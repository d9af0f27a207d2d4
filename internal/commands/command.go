package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFilter Type = "filter"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeTheme  Type = "theme"
)

// DescriptionSeparator splits the title from the description in "add".
const DescriptionSeparator = "::"

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title       string
	Description string
}

type FilterArgs struct {
	Name string
}

type TargetArgs struct {
	ID string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Filter *FilterArgs
	Target *TargetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(raw, parts[0]))

	switch head {
	case string(TypeAdd):
		return parseAdd(input, rest)
	case string(TypeFilter), "show":
		return parseFilter(input, parts[1:])
	case string(TypeToggle), "done":
		return parseTarget(input, TypeToggle, parts[1:])
	case string(TypeDelete), "rm":
		return parseTarget(input, TypeDelete, parts[1:])
	case string(TypeTheme):
		if len(parts) > 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme takes no arguments"}
		}
		return Command{Type: TypeTheme, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	title, description, _ := strings.Cut(rest, DescriptionSeparator)
	title = strings.TrimSpace(title)
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, Description: strings.TrimSpace(description)}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of: all, active, completed"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Name: strings.ToLower(args[0])}}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{ID: args[0]}}, nil
}
