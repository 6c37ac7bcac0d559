package render

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/template"
)

// ErrNotFound is returned when no template matches the requested key.
var ErrNotFound = errors.New("template not found")

// placeholder matches {{name}}. The name is taken verbatim, whitespace included.
var placeholder = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// templateRepository defines the template lookup the renderer needs.
type templateRepository interface {
	GetByKey(ctx context.Context, key string) (model.Template, error)
}

// Renderer resolves a template by key and fills in its placeholders.
type Renderer struct {
	repo templateRepository
}

// NewRenderer creates a new Renderer.
func NewRenderer(r templateRepository) *Renderer {
	return &Renderer{repo: r}
}

// Render fetches the template and substitutes vars into its subject and
// bodies. Placeholders with no matching variable are left as they are.
func (r *Renderer) Render(ctx context.Context, key string, vars model.Variables) (model.Content, error) {
	t, err := r.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			return model.Content{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}

		return model.Content{}, fmt.Errorf("render %s: %w", key, err)
	}

	return model.Content{
		Subject: Substitute(t.Subject, vars),
		HTML:    Substitute(t.HTML, vars),
		Text:    Substitute(t.Text, vars),
	}, nil
}

// Substitute replaces every {{name}} in s with the stringified value of
// vars[name], matching name exactly: {{ name }} looks up " name ".
// Replacement is single pass: values that themselves contain placeholders are
// not expanded again.
func Substitute(s string, vars model.Variables) string {
	if s == "" || len(vars) == 0 {
		return s
	}

	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]

		v, ok := vars[name]
		if !ok {
			return match
		}

		return stringify(v)
	})
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
