// Package templates renders named view fragments from the embedded .tmpl files.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed files/*.tmpl
var files embed.FS

// ErrUnknownTemplate is returned when no fragment has the requested name
var ErrUnknownTemplate = errors.New("unknown template")

var fragments = template.Must(
	template.New("").Option("missingkey=zero").ParseFS(files, "files/*.tmpl"),
)

// Renderer turns a named fragment and its variables into markup
type Renderer interface {
	Render(name string, vars map[string]string) (string, error)
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(name string, vars map[string]string) (string, error)

func (f RendererFunc) Render(name string, vars map[string]string) (string, error) {
	return f(name, vars)
}

// Default renders the embedded fragments
var Default Renderer = RendererFunc(Render)

// Render executes the embedded fragment called name with vars
func Render(name string, vars map[string]string) (string, error) {
	tmpl := fragments.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, vars); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return sb.String(), nil
}
