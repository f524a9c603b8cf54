package session

import (
	"fmt"
	"slices"
	"strings"
)

// FilterAction says whether a toggle added or removed a tag.
type FilterAction int

const (
	FilterAdded FilterAction = iota
	FilterRemoved
)

func (a FilterAction) String() string {
	if a == FilterRemoved {
		return "Removed"
	}
	return "Added"
}

// FilterEvent reports the outcome of a toggle.
type FilterEvent struct {
	Action FilterAction
	Tag    string
}

// Message is the history line describing the event.
func (e FilterEvent) Message() string {
	return fmt.Sprintf("%s filter: %s", e.Action, e.Tag)
}

// FilterSet is an insertion-ordered set of filter tags. It is a value type:
// Toggle returns a new set and leaves the receiver untouched.
type FilterSet struct {
	tags []string
}

// NewFilterSet builds a set from tags, dropping duplicates.
func NewFilterSet(tags ...string) FilterSet {
	var f FilterSet
	for _, tag := range tags {
		if !f.Contains(tag) {
			f.tags = append(f.tags, tag)
		}
	}
	return f
}

// Toggle removes tag if present, otherwise appends it.
func (f FilterSet) Toggle(tag string) (FilterSet, FilterEvent) {
	if i := slices.Index(f.tags, tag); i >= 0 {
		return FilterSet{tags: slices.Delete(slices.Clone(f.tags), i, i+1)}, FilterEvent{Action: FilterRemoved, Tag: tag}
	}
	return FilterSet{tags: append(slices.Clone(f.tags), tag)}, FilterEvent{Action: FilterAdded, Tag: tag}
}

func (f FilterSet) Contains(tag string) bool {
	return slices.Contains(f.tags, tag)
}

// Tags returns the tags in insertion order. The result is never nil.
func (f FilterSet) Tags() []string {
	return append([]string{}, f.tags...)
}

func (f FilterSet) Len() int {
	return len(f.tags)
}

// String joins the tags for display, or returns "None" for an empty set.
func (f FilterSet) String() string {
	if len(f.tags) == 0 {
		return "None"
	}
	return strings.Join(f.tags, ", ")
}
