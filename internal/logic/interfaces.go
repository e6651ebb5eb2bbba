package logic

import "scriptpick/internal/domain"

// ScriptStore provides read-only access to the scripts of a manifest
type ScriptStore interface {
	Entries() []domain.ScriptEntry
	Command(name string) (string, bool)
	Filter(query string) []domain.ScriptEntry
	Len() int
}
