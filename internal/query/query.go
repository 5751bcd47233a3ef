package query

// Package query applies JMESPath expressions to API results so CLI users
// can trim list output, e.g. --query "[?status=='available'].model".

import (
	"encoding/json"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/rentaride/rentaride/internal/errors"
)

// Validate checks an expression without evaluating it. An empty expression
// is valid and means "no filtering".
func Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeValidation, "invalid query %q", expr)
	}
	return nil
}

// Apply evaluates expr against v and returns the result. v is round-tripped
// through JSON first so struct results behave like the plain maps JMESPath
// expects. An empty expression returns v unchanged.
func Apply(expr string, v any) (any, error) {
	if strings.TrimSpace(expr) == "" {
		return v, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode query input")
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode query input")
	}

	result, err := jmespath.Search(expr, plain)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "evaluate query %q", expr)
	}
	return result, nil
}
