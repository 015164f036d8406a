package server

import (
	"net/http"

	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/handler"

	"github.com/kerbaras/animes/pkg/graph"
)

// requestBuilder turns HTTP requests into prepared operations through
// graph.Prepare, so variables are normalized the same way as in-process
// execution. Prepared operations are cached per operation name and query.
type requestBuilder struct {
	options handler.ParseHTTPRequestOptions
}

func newRequestBuilder(maxBodySize int64) *requestBuilder {
	return &requestBuilder{
		options: handler.ParseHTTPRequestOptions{MaxBodySize: uint(maxBodySize)},
	}
}

func (b *requestBuilder) Build(r *http.Request, h handler.HTTPHandler) (*handler.Request, error) {
	parsed, err := handler.ParseHTTPRequest(r, &b.options)
	if err != nil {
		return nil, err
	}

	req := graph.Request{
		Query:         parsed.Query,
		OperationName: parsed.OperationName,
		Variables:     parsed.Variables,
	}

	key := req.OperationName + "\x00" + req.Query
	cache := h.OperationCache()

	var operation *executor.PreparedOperation
	if cache != nil {
		operation, _ = cache.Get(key)
	}
	if operation == nil {
		if operation, err = graph.Prepare(h.Schema(), req); err != nil {
			return nil, err
		}
		if cache != nil {
			cache.Add(key, operation)
		}
	}

	return &handler.Request{
		Ctx:         r.Context(),
		Operation:   operation,
		ExecuteOpts: req.ExecuteOptions(),
	}, nil
}
