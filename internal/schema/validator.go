// Package schema validates document frontmatter against embedded CUE schemas.
// Schema violations surface as issues on the document, not as evaluation
// errors; a document with bad frontmatter still gets scored.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/dotcommander/contentgate/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator checks frontmatter maps against compiled CUE schemas.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles every embedded schema. A schema file that fails to
// compile is a programming error, not a runtime condition, so this errors
// rather than skipping.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		raw, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}
		inst := v.ctx.CompileBytes(raw, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}
		name := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[name] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return nil, fmt.Errorf("no schemas embedded")
	}
	return v, nil
}

// ValidateFrontmatter checks a parsed frontmatter map against the content
// schema. A nil or empty map validates trivially: frontmatter is optional.
func (v *Validator) ValidateFrontmatter(path string, data map[string]any) []types.Issue {
	if len(data) == 0 {
		return nil
	}
	schema, ok := v.schemas["content"]
	if !ok {
		return nil
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return []types.Issue{{
			File:     path,
			Message:  fmt.Sprintf("frontmatter cannot be encoded: %v", encErr),
			Severity: types.SeverityError,
		}}
	}

	def := schema.LookupPath(cue.ParsePath("#Content"))
	if !def.Exists() {
		return nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return issuesFromCUE(path, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return issuesFromCUE(path, err)
	}
	return nil
}

func issuesFromCUE(path string, err error) []types.Issue {
	return []types.Issue{{
		File:     path,
		Message:  fmt.Sprintf("frontmatter schema violation: %v", err),
		Severity: types.SeverityWarning,
	}}
}
