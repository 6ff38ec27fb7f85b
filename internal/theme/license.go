package theme

import (
	"embed"
	"fmt"
)

//go:embed licenses/*.txt
var licenseFiles embed.FS

// License describes how a theme may be redistributed. File names a license
// text embedded in the binary under licenses/.
type License struct {
	Type string
	URL  string
	File string
}

// Text returns the embedded license text.
func (l License) Text() (string, error) {
	if l.File == "" {
		return "", fmt.Errorf("license %s has no embedded text", l.Type)
	}
	b, err := licenseFiles.ReadFile("licenses/" + l.File)
	if err != nil {
		return "", fmt.Errorf("failed to read license %s: %w", l.File, err)
	}
	return string(b), nil
}
