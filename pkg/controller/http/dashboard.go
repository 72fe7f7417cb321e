package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
)

type dashboardController struct {
	uc interfaces.DashboardUseCases
}

// handleGetData serves GET /api/data[?type=...]. It always answers 200;
// unreachable gateway sources show up in the availability map instead.
func (c *dashboardController) handleGetData(w http.ResponseWriter, r *http.Request) {
	filter := dashboard.ParseFilter(r.URL.Query().Get("type"))
	ctxlog.From(r.Context()).Debug("snapshot requested", "filter", filter.String())

	snapshot := c.uc.GetSnapshot(r.Context(), filter)
	writeJSON(w, r, http.StatusOK, snapshot.View(filter))
}

// handlePostData serves POST /api/data with a {action, data} body
func (c *dashboardController) handlePostData(w http.ResponseWriter, r *http.Request) {
	var req dashboard.ActionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		handleError(w, r, goerr.Wrap(err, "invalid JSON body", goerr.T(apperr.ErrTagInvalidFormat)))
		return
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		handleError(w, r, goerr.New("invalid JSON body: unexpected data after the request object", goerr.T(apperr.ErrTagInvalidFormat)))
		return
	}

	resp, err := c.uc.SubmitAction(r.Context(), &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
