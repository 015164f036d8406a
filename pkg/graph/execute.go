package graph

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/parser"
	"github.com/botobag/artemis/graphql/token"
	"github.com/samber/lo"
)

var ErrEmptyQuery = errors.New("empty query")

// number matches json.Number from encoding/json and jsoniter decoders
// configured with UseNumber.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// SyntaxError is returned by Prepare when the query does not parse.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return e.Err.Error() }

func (e *SyntaxError) Unwrap() error { return e.Err }

// ValidationError is returned by Prepare when the query parses but cannot
// run against the schema.
type ValidationError struct {
	Errs graphql.Errors
}

func (e *ValidationError) Error() string {
	messages := lo.Map(e.Errs.Errors, func(err *graphql.Error, _ int) string { return err.Message })
	return strings.Join(messages, "; ")
}

// Request is a single GraphQL operation with its variables.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Prepare parses req.Query and validates the selected operation against
// schema.
func Prepare(schema graphql.Schema, req Request) (*executor.PreparedOperation, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	document, err := parser.Parse(token.NewSource(req.Query))
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}

	operation, errs := executor.Prepare(schema, document, executor.OperationName(req.OperationName))
	if errs.HaveOccurred() {
		return nil, &ValidationError{Errs: errs}
	}
	return operation, nil
}

// ExecuteOptions returns the executor options carrying the request's
// variables in the shape the schema's scalars accept.
func (req Request) ExecuteOptions() []executor.ExecuteOption {
	return []executor.ExecuteOption{
		executor.VariableValues(NormalizeVariables(req.Variables)),
	}
}

// Execute parses, validates and runs req against schema. Failures before
// execution come back in the result's Errors with no Data.
func Execute(ctx context.Context, schema graphql.Schema, req Request) *executor.ExecutionResult {
	operation, err := Prepare(schema, req)
	if err != nil {
		return &executor.ExecutionResult{Errors: ErrorsFrom(err)}
	}
	return operation.Execute(ctx, req.ExecuteOptions()...)
}

// NormalizeVariables converts whole numbers decoded from JSON (float64 or
// a json number) into int, recursing into lists and input objects. The Int
// scalar rejects float64 variables outright.
func NormalizeVariables(vars map[string]interface{}) map[string]interface{} {
	if vars == nil {
		return nil
	}
	out := make(map[string]interface{}, len(vars))
	for name, value := range vars {
		out[name] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v)
		}
		return v
	case number:
		if i, err := v.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return normalizeValue(f)
		}
		return v.String()
	case []interface{}:
		return lo.Map(v, func(item interface{}, _ int) interface{} { return normalizeValue(item) })
	case map[string]interface{}:
		return NormalizeVariables(v)
	default:
		return value
	}
}

// ErrorsFrom converts any error into graphql.Errors suitable for a response
// body.
func ErrorsFrom(err error) graphql.Errors {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Errs
	}
	var gqlErr *graphql.Error
	if errors.As(err, &gqlErr) {
		return graphql.ErrorsOf(gqlErr)
	}
	return graphql.ErrorsOf(graphql.NewError(err.Error()))
}
