package session

// Version is shown in the welcome entry.
const Version = "1.0.0"

// SeedEntries returns the entries a fresh or cleared history starts with.
func SeedEntries() []Entry {
	return []Entry{
		NewSystemEntry("Welcome v" + Version),
		NewSystemEntry(`Type "help" for available commands`),
	}
}

// State is everything the interpreter tracks for one session.
type State struct {
	History  *History
	Filters  FilterSet
	Keywords []string

	// InFlight is true while a search placeholder is waiting for its result.
	InFlight bool
	// Processing is true while a local command waits out its delay.
	Processing bool
	// PendingInput is the submitted line not yet consumed by a local command.
	PendingInput string
}

// NewState creates a seeded state.
func NewState() *State {
	return &State{
		History:  NewHistory(SeedEntries()...),
		Keywords: []string{},
	}
}

// Busy reports whether new input should be held back.
func (s *State) Busy() bool {
	return s.InFlight || s.Processing
}

// Snapshot is a read-only copy of the state for renderers.
type Snapshot struct {
	Entries      []Entry
	Filters      []string
	Keywords     []string
	InFlight     bool
	Processing   bool
	PendingInput string
}

// Snapshot copies the state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Entries:      s.History.Entries(),
		Filters:      s.Filters.Tags(),
		Keywords:     append([]string{}, s.Keywords...),
		InFlight:     s.InFlight,
		Processing:   s.Processing,
		PendingInput: s.PendingInput,
	}
}
