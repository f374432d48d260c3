package scheme

import (
	"fmt"
	"math"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// schemaSource constrains a single scheme declaration.
const schemaSource = `
#Factor: {
	name:   string & !=""
	size:   int & >=1
	limit?: int & >=1
}

#Scheme: {
	kind:       *"mixed" | "filter"
	cycle:      *"cycle" | (string & !="")
	remainder?: string & !=""
	period?:    int & >=1
	factors: [#Factor, ...#Factor]
}
`

// CompileScheme parses a CUE value into a Scheme.
//
// The CUE value should be the scheme struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`scheme: clock: { ... }`)
//	s, err := CompileScheme("clock", v.LookupPath(cue.ParsePath("scheme.clock")))
func CompileScheme(name string, v cue.Value) (*Scheme, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	schema := v.Context().CompileString(schemaSource).LookupPath(cue.ParsePath("#Scheme"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	// Optional fields are read from the declaration as written; defaults
	// come from the unified value.
	unified := schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	decl := Declaration{Name: name}
	kind, err := lookupString(unified, "kind")
	if err != nil {
		return nil, err
	}
	decl.Kind = Kind(kind)

	if decl.Cycle, err = lookupString(unified, "cycle"); err != nil {
		return nil, err
	}

	if remainderVal := v.LookupPath(cue.ParsePath("remainder")); remainderVal.Exists() {
		if decl.Kind != KindFilter {
			return nil, &CompileError{
				Field:   "remainder",
				Message: "remainder is only allowed in filter schemes",
				Pos:     remainderVal.Pos(),
			}
		}
		if decl.Remainder, err = remainderVal.String(); err != nil {
			return nil, formatCUEError(err)
		}
	}

	periodVal := v.LookupPath(cue.ParsePath("period"))
	if periodVal.Exists() {
		if decl.Period, err = periodVal.Int64(); err != nil {
			return nil, formatCUEError(err)
		}
	} else if decl.Kind == KindFilter {
		return nil, &CompileError{
			Field:   "period",
			Message: "period is required for filter schemes",
			Pos:     v.Pos(),
		}
	}

	if decl.Factors, err = parseFactors(v.LookupPath(cue.ParsePath("factors")), decl.Kind); err != nil {
		return nil, err
	}

	s, err := Build(decl)
	if err != nil {
		return nil, &CompileError{Field: "scheme", Message: err.Error(), Pos: v.Pos()}
	}
	return s, nil
}

// parseFactors extracts the factor list, checking names are unique and the
// sizes multiply without overflow.
func parseFactors(v cue.Value, kind Kind) ([]FactorDecl, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var factors []FactorDecl
	seen := make(map[string]bool)
	product := int64(1)
	for iter.Next() {
		fv := iter.Value()
		var f FactorDecl

		if f.Name, err = lookupString(fv, "name"); err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, &CompileError{
				Field:   "factors.name",
				Message: fmt.Sprintf("duplicate factor name: %q", f.Name),
				Pos:     fv.Pos(),
			}
		}
		seen[f.Name] = true

		if f.Size, err = fv.LookupPath(cue.ParsePath("size")).Int64(); err != nil {
			return nil, formatCUEError(err)
		}
		if product > math.MaxInt64/f.Size {
			return nil, &CompileError{
				Field:   "factors.size",
				Message: "product of factor sizes overflows int64",
				Pos:     fv.Pos(),
			}
		}
		product *= f.Size

		if limitVal := fv.LookupPath(cue.ParsePath("limit")); limitVal.Exists() {
			if kind != KindFilter {
				return nil, &CompileError{
					Field:   "factors.limit",
					Message: "limit is only allowed in filter schemes",
					Pos:     limitVal.Pos(),
				}
			}
			if f.Limit, err = limitVal.Int64(); err != nil {
				return nil, formatCUEError(err)
			}
		}

		factors = append(factors, f)
	}
	return factors, nil
}

// lookupString returns the string at path, resolving defaults.
func lookupString(v cue.Value, path string) (string, error) {
	field := v.LookupPath(cue.ParsePath(path))
	if !field.Exists() {
		return "", &CompileError{
			Field:   path,
			Message: path + " is required",
			Pos:     v.Pos(),
		}
	}
	if def, ok := field.Default(); ok {
		field = def
	}
	s, err := field.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	compileErr := &CompileError{Field: "cue", Message: firstErr.Error()}
	if positions := errors.Positions(firstErr); len(positions) > 0 {
		compileErr.Pos = positions[0]
	}
	return compileErr
}
