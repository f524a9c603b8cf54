// Package session holds the command interpreter and the state it maintains
// for one interactive session: history, active filters and last keywords.
package session

import (
	"github.com/Cyclone1070/termsearch/internal/search"
	"github.com/google/uuid"
)

// Kind identifies the variant of an Entry.
type Kind int

const (
	KindSystem Kind = iota
	KindUser
	KindResults
)

func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "system"
	case KindUser:
		return "user"
	case KindResults:
		return "results"
	default:
		return "unknown"
	}
}

// Entry is one item of the session history.
// The set of implementations is closed: SystemEntry, UserEntry, ResultsEntry.
type Entry interface {
	EntryID() string
	Kind() Kind
	isEntry()
}

// SystemEntry is a message produced by the interpreter.
type SystemEntry struct {
	ID       string
	Content  string
	Loading  bool
	Error    bool
	Markdown bool // Content is markdown and may be rendered as such
}

func (e SystemEntry) EntryID() string { return e.ID }
func (SystemEntry) Kind() Kind        { return KindSystem }
func (SystemEntry) isEntry()          {}

// UserEntry echoes a line the user submitted.
type UserEntry struct {
	ID      string
	Content string
}

func (e UserEntry) EntryID() string { return e.ID }
func (UserEntry) Kind() Kind        { return KindUser }
func (UserEntry) isEntry()          {}

// ResultsEntry carries the files returned by a completed search.
type ResultsEntry struct {
	ID       string
	Results  []search.FileResult
	Keywords []string
}

func (e ResultsEntry) EntryID() string { return e.ID }
func (ResultsEntry) Kind() Kind        { return KindResults }
func (ResultsEntry) isEntry()          {}

func NewSystemEntry(content string) SystemEntry {
	return SystemEntry{ID: uuid.NewString(), Content: content}
}

func NewErrorEntry(content string) SystemEntry {
	return SystemEntry{ID: uuid.NewString(), Content: content, Error: true}
}

func NewLoadingEntry(content string) SystemEntry {
	return SystemEntry{ID: uuid.NewString(), Content: content, Loading: true}
}

func NewUserEntry(content string) UserEntry {
	return UserEntry{ID: uuid.NewString(), Content: content}
}

func NewResultsEntry(results []search.FileResult, keywords []string) ResultsEntry {
	return ResultsEntry{ID: uuid.NewString(), Results: results, Keywords: keywords}
}
