package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/catalog/internal/render"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

// writePage prints a page in the selected format. Text output ends with the
// share link when any criteria are set.
func writePage(w io.Writer, format string, v core.PageView, c core.Criteria, shareBase string, st render.Styles) error {
	var share string
	if q := c.Encode(); q != "" {
		share = c.ShareURL(shareBase)
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(render.NewDocument(v, c.Encode(), share))

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(render.NewDocument(v, c.Encode(), share)); err != nil {
			return err
		}
		return enc.Close()

	default:
		if err := render.WriteText(w, v, st); err != nil {
			return err
		}
		if share != "" {
			_, err := fmt.Fprintf(w, "\nShare: %s\n", share)
			return err
		}
		return nil
	}
}

// textStyles returns colored styles for terminals and plain styles otherwise.
func textStyles(w io.Writer) render.Styles {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return render.DefaultStyles()
	}
	return render.PlainStyles()
}
