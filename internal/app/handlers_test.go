package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"prai/internal/coordinator"
	"prai/internal/diff"
)

func TestWriteTypedErrorStatusCodes(t *testing.T) {

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"in progress", coordinator.ErrReviewInProgress, http.StatusConflict},
		{"not found", &coordinator.NotFoundError{Repo: "acme/widgets", PR: 7}, http.StatusNotFound},
		{"rate limited", &coordinator.DiffFetchError{Repo: "acme/widgets", PR: 7, RateLimited: true, Err: errors.New("429")}, http.StatusTooManyRequests},
		{"fetch failed", &coordinator.DiffFetchError{Repo: "acme/widgets", PR: 7, Err: errors.New("reset")}, http.StatusBadGateway},
		{"budget", &coordinator.BudgetError{Reason: "daily spend limit of 5.0000 USD would be exceeded"}, http.StatusTooManyRequests},
		{"malformed", &diff.MalformedDiffError{Reason: "no parsable patches"}, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeTypedError(rec, tc.err)
			require.Equal(t, tc.want, rec.Code)
			require.NotEmpty(t, rec.Body.String())
		})
	}
}
