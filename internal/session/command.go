package session

import (
	"strings"

	"github.com/Cyclone1070/termsearch/internal/search"
)

// queryOffset is where the query starts for every mode prefix and for
// "filter ". It equals len("search "), so "find " and "cmd " lose the first
// two and three characters of their query respectively.
const queryOffset = 7

// Command is a classified input line.
type Command interface {
	isCommand()
}

type HelpCommand struct{}

type ClearCommand struct{}

type KeywordsCommand struct{}

type SettingsCommand struct{}

// SearchCommand dispatches Query to the backend endpoint for Mode.
type SearchCommand struct {
	Mode  search.Mode
	Query string
}

// FilterCommand toggles Tag without replaying the last search.
type FilterCommand struct {
	Tag string
}

// ListFiltersCommand reports the active filters.
type ListFiltersCommand struct{}

// UnrecognizedCommand is any input outside the vocabulary.
type UnrecognizedCommand struct {
	Input string
}

func (HelpCommand) isCommand()         {}
func (ClearCommand) isCommand()        {}
func (KeywordsCommand) isCommand()     {}
func (SettingsCommand) isCommand()     {}
func (SearchCommand) isCommand()       {}
func (FilterCommand) isCommand()       {}
func (ListFiltersCommand) isCommand()  {}
func (UnrecognizedCommand) isCommand() {}

// Classify maps an input line to a Command. Matching is case-insensitive and
// the input is not trimmed, so "filter " (trailing space) lists filters.
// Blank input returns ErrEmptyInput.
func Classify(input string) (Command, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	lower := strings.ToLower(input)
	switch lower {
	case "help":
		return HelpCommand{}, nil
	case "clear":
		return ClearCommand{}, nil
	case "keywords":
		return KeywordsCommand{}, nil
	case "settings":
		return SettingsCommand{}, nil
	}

	for _, mode := range search.Modes {
		if strings.HasPrefix(lower, string(mode)+" ") {
			return SearchCommand{Mode: mode, Query: fromOffset(input)}, nil
		}
	}

	if strings.HasPrefix(lower, "filter ") {
		tag := strings.TrimSpace(fromOffset(input))
		if tag == "" {
			return ListFiltersCommand{}, nil
		}
		return FilterCommand{Tag: tag}, nil
	}

	return UnrecognizedCommand{Input: input}, nil
}

// fromOffset returns input from rune queryOffset on, or "" when it is shorter.
func fromOffset(input string) string {
	runes := []rune(input)
	if len(runes) <= queryOffset {
		return ""
	}
	return string(runes[queryOffset:])
}
