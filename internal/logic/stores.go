package logic

import (
	"sort"

	"scriptpick/internal/domain"
)

// MemoryScriptStore is an immutable in-memory ScriptStore.
// Entries are kept sorted by name.
type MemoryScriptStore struct {
	entries  []domain.ScriptEntry
	commands map[string]string
}

// NewMemoryScriptStore creates a store from a name -> command mapping
func NewMemoryScriptStore(scripts map[string]string) *MemoryScriptStore {
	s := &MemoryScriptStore{
		entries:  make([]domain.ScriptEntry, 0, len(scripts)),
		commands: make(map[string]string, len(scripts)),
	}
	for name, command := range scripts {
		s.commands[name] = command
		s.entries = append(s.entries, domain.ScriptEntry{Name: name, Command: command})
	}
	sortByName(s.entries)
	return s
}

func (s *MemoryScriptStore) Entries() []domain.ScriptEntry {
	// Return a copy to prevent external modification
	result := make([]domain.ScriptEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *MemoryScriptStore) Command(name string) (string, bool) {
	command, ok := s.commands[name]
	return command, ok
}

// Filter returns the entries matching query, in name order
func (s *MemoryScriptStore) Filter(query string) []domain.ScriptEntry {
	return FilterEntries(s.entries, query)
}

func (s *MemoryScriptStore) Len() int {
	return len(s.entries)
}

func sortByName(entries []domain.ScriptEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
