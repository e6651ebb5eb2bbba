package domain

// ScriptEntry represents one script declared in the manifest
type ScriptEntry struct {
	Name    string
	Command string
}

// Selection is the outcome of a picker session
type Selection struct {
	Name      string
	confirmed bool
}

// NoSelection is returned when the user leaves the picker without choosing
var NoSelection = Selection{}

// Confirm returns a selection for the given script name
func Confirm(name string) Selection {
	return Selection{Name: name, confirmed: true}
}

// Confirmed reports whether a script was chosen
func (s Selection) Confirmed() bool {
	return s.confirmed
}

func (s Selection) String() string {
	if !s.confirmed {
		return "none"
	}
	return s.Name
}
