package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeRemove  Type = "remove"
	TypeClear   Type = "clear"
	TypeHistory Type = "history"
)

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
	Title string
}

// RowArgs targets one visible row by its 1-based position.
type RowArgs struct {
	Row int
}

type HistoryArgs struct {
	Limit int
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Done    *RowArgs
	Remove  *RowArgs
	History *HistoryArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseRow(input, TypeDone, args)
	case TypeRemove, "rm":
		return parseRow(input, TypeRemove, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	case TypeHistory:
		return parseHistory(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseRow(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a row number", typ)}
	}
	row, err := strconv.Atoi(args[0])
	if err != nil || row < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a positive row number", typ)}
	}
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeDone:
		cmd.Done = &RowArgs{Row: row}
	case TypeRemove:
		cmd.Remove = &RowArgs{Row: row}
	}
	return cmd, nil
}

func parseHistory(raw string, args []string) (Command, error) {
	limit := 5
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "history limit must be a positive number"}
		}
		limit = parsed
	}
	return Command{Type: TypeHistory, Raw: raw, History: &HistoryArgs{Limit: limit}}, nil
}
