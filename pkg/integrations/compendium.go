package integrations

import (
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/thrones/pkg/data"
)

const compendiumCSS = `
h1 { margin-bottom: 0.2em; }
dl { margin: 0; }
dt { font-weight: bold; margin-top: 0.6em; }
dd { margin-left: 1em; }
`

// Compendium writes a list of characters as an EPUB, one section each.
type Compendium struct {
	outputDir string
}

func NewCompendium(outputDir string) *Compendium {
	return &Compendium{outputDir: outputDir}
}

// Create writes <title>.epub into the output directory and returns its path.
func (c *Compendium) Create(title string, characters []data.Character) (string, error) {
	if len(characters) == 0 {
		return "", fmt.Errorf("no characters to compile")
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	e.SetAuthor("thrones")
	e.SetDescription(fmt.Sprintf("%d characters", len(characters)))
	e.SetLang("en")

	cssPath, err := addCSS(e)
	if err != nil {
		return "", err
	}

	for i, character := range characters {
		name := character.Name
		if name == "" {
			name = fmt.Sprintf("Unnamed character %d", i+1)
		}
		filename := fmt.Sprintf("character-%04d.xhtml", i+1)
		if _, err := e.AddSection(characterHTML(name, character), name, filename, cssPath); err != nil {
			return "", fmt.Errorf("failed to add %q: %w", name, err)
		}
	}

	outputPath := filepath.Join(c.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func addCSS(e *epub.Epub) (string, error) {
	source := "data:text/css;base64," + base64.StdEncoding.EncodeToString([]byte(compendiumCSS))
	cssPath, err := e.AddCSS(source, "compendium.css")
	if err != nil {
		return "", fmt.Errorf("failed to add stylesheet: %w", err)
	}
	return cssPath, nil
}

func characterHTML(name string, c data.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n<dl>\n", html.EscapeString(name))

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<dt>%s</dt><dd>%s</dd>\n", label, html.EscapeString(value))
	}
	row("Gender", c.Gender)
	row("Culture", c.Culture)
	row("Born", c.Born)
	row("Died", c.Died)
	row("Aliases", strings.Join(c.Aliases, ", "))
	row("Seasons", data.SeasonNumerals(c.TVSeries))
	row("Played by", strings.Join(c.PlayedBy, ", "))

	b.WriteString("</dl>\n")
	return b.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "characters"
	}
	return result
}
