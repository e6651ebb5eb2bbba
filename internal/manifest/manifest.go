package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileName is the manifest looked up in the working directory
const DefaultFileName = "package.json"

// Placeholder keys shown when the manifest cannot be used
const (
	MissingFileKey = "file_not_found"
	ParseErrorKey  = "Error parsing json"
	parseErrorText = "There was an error parsing your package.json"
)

// Kind classifies the outcome of reading a manifest
type Kind int

const (
	Loaded Kind = iota
	MissingFile
	ParseError
)

func (k Kind) String() string {
	switch k {
	case Loaded:
		return "loaded"
	case MissingFile:
		return "missing file"
	case ParseError:
		return "parse error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is what the manifest reader hands to the core
type Result struct {
	Kind     Kind
	FileName string
	Err      error // underlying read or decode error, nil when Loaded

	scripts map[string]string
}

// packageFile mirrors the part of package.json we care about
type packageFile struct {
	Scripts map[string]string `json:"scripts"`
}

// errNoScripts is reported when the manifest has no usable scripts object
var errNoScripts = errors.New("manifest has no scripts object")

// Load reads fileName from dir and classifies the result. It never fails;
// problems are carried in the returned Result.
func Load(dir, fileName string) Result {
	if fileName == "" {
		fileName = DefaultFileName
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("failed to read %s: %w", fileName, err)
		}
		return Result{Kind: MissingFile, FileName: fileName, Err: err}
	}

	return Parse(fileName, data)
}

// Parse decodes manifest bytes. Later duplicate script names overwrite earlier ones.
func Parse(fileName string, data []byte) Result {
	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Result{Kind: ParseError, FileName: fileName, Err: fmt.Errorf("failed to parse %s: %w", fileName, err)}
	}
	if pkg.Scripts == nil {
		return Result{Kind: ParseError, FileName: fileName, Err: errNoScripts}
	}

	return Result{Kind: Loaded, FileName: fileName, scripts: pkg.Scripts}
}

// Scripts returns the name to command mapping. Anything other than a
// loaded manifest turns into a single placeholder entry describing it.
func (r Result) Scripts() map[string]string {
	switch r.Kind {
	case Loaded:
		out := make(map[string]string, len(r.scripts))
		for name, command := range r.scripts {
			out[name] = command
		}
		return out
	case MissingFile:
		return map[string]string{
			MissingFileKey: fmt.Sprintf("%s could not be found in this directory", r.FileName),
		}
	default:
		return map[string]string{
			ParseErrorKey: parseErrorText,
		}
	}
}
