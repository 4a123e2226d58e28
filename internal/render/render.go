// Package render projects classified fragments onto an output stream under
// one of five mutually exclusive presentation modes.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sikiriki12/imgx/internal/fragment"
)

var (
	// Styles
	thinkingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	imageStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("12"))
)

// Mode selects how fragments are presented.
type Mode int

const (
	ModeDefault Mode = iota
	ModeVerbose
	ModeCodeOnly
	ModeQuiet
	ModeJSON
)

// Select resolves the mode flags with fixed precedence: json beats quiet
// beats code-only beats verbose.
func Select(jsonOut, quiet, codeOnly, verbose bool) Mode {
	switch {
	case jsonOut:
		return ModeJSON
	case quiet:
		return ModeQuiet
	case codeOnly:
		return ModeCodeOnly
	case verbose:
		return ModeVerbose
	default:
		return ModeDefault
	}
}

// Renderer writes a fragment sequence to an output stream.
type Renderer interface {
	Render(fragments []fragment.Fragment, w io.Writer) error
}

// New returns the renderer for mode.
func New(mode Mode) Renderer {
	switch mode {
	case ModeJSON:
		return jsonRenderer{}
	case ModeQuiet:
		return quietRenderer{}
	case ModeCodeOnly:
		return codeRenderer{}
	case ModeVerbose:
		return verboseRenderer{}
	default:
		return defaultRenderer{}
	}
}

// defaultRenderer prints narration text only.
type defaultRenderer struct{}

func (defaultRenderer) Render(fragments []fragment.Fragment, w io.Writer) error {
	for _, f := range fragments {
		if f.Kind != fragment.KindNarration {
			continue
		}
		if _, err := fmt.Fprintln(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// quietRenderer prints nothing. Image persistence diagnostics go to the
// log stream and are unaffected.
type quietRenderer struct{}

func (quietRenderer) Render([]fragment.Fragment, io.Writer) error {
	return nil
}

// codeRenderer prints generated code blocks only, unfenced so the output
// can be piped straight into a file or interpreter.
type codeRenderer struct{}

func (codeRenderer) Render(fragments []fragment.Fragment, w io.Writer) error {
	for _, f := range fragments {
		if f.Kind != fragment.KindCode {
			continue
		}
		if _, err := fmt.Fprintln(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// verboseRenderer prints every fragment with a per-kind marker.
type verboseRenderer struct{}

func (verboseRenderer) Render(fragments []fragment.Fragment, w io.Writer) error {
	for _, f := range fragments {
		var err error
		switch f.Kind {
		case fragment.KindReasoning:
			_, err = fmt.Fprintf(w, "%s\n%s\n", thinkingStyle.Render("[thinking]"), f.Content)
		case fragment.KindNarration:
			_, err = fmt.Fprintln(w, f.Content)
		case fragment.KindCode:
			_, err = fmt.Fprintf(w, "```python\n%s\n```\n", f.Content)
		case fragment.KindExecutionResult:
			_, err = fmt.Fprintf(w, "%s\n%s\n", resultStyle.Render("[result]"), f.Content)
		case fragment.KindImage:
			_, err = fmt.Fprintln(w, imageStyle.Render("[generated image]"))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// jsonRenderer serializes the whole sequence as one document.
type jsonRenderer struct{}

func (jsonRenderer) Render(fragments []fragment.Fragment, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fragments)
}
