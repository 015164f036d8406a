package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/handler"

	"github.com/kerbaras/animes/pkg/graph"
	"github.com/kerbaras/animes/pkg/logging"
)

// errorPresenter writes request failures as a GraphQL response body. Queries
// that fail validation are answered with 200, everything before that with 400.
type errorPresenter struct {
	logger *slog.Logger
}

func (p errorPresenter) Write(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest

	var validationErr *graph.ValidationError
	if errors.As(err, &validationErr) {
		status = http.StatusOK
	}

	p.logger.Warn("graphql request rejected", "status", status, "error", err.Error())
	writeResult(w, status, &executor.ExecutionResult{Errors: graph.ErrorsFrom(err)})
}

type resultPresenter struct{}

func (resultPresenter) Write(w http.ResponseWriter, r *http.Request, _ *handler.Request, result *executor.ExecutionResult) {
	if result.Errors.HaveOccurred() {
		logger := logging.FromContext(r.Context())
		for _, e := range result.Errors.Errors {
			logger.Warn("graphql error", "message", e.Message)
		}
	}
	writeResult(w, http.StatusOK, result)
}

func writeResult(w http.ResponseWriter, status int, result *executor.ExecutionResult) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	result.MarshalJSONTo(w)
}
