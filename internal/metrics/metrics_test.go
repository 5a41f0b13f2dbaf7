// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		route     string
		status    int
		wantRoute string
	}{
		{name: "list movies", method: "GET", route: "/movies", status: 200, wantRoute: "/movies"},
		{name: "unauthorized", method: "GET", route: "/movies/{id}", status: 401, wantRoute: "/movies/{id}"},
		{name: "unmatched route", method: "GET", route: "", status: 404, wantRoute: "unmatched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestsTotal.WithLabelValues(tt.method, tt.wantRoute, strconv.Itoa(tt.status))
			before := testutil.ToFloat64(counter)

			RecordHTTPRequest(tt.method, tt.route, tt.status, 20*time.Millisecond)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordLogin(t *testing.T) {
	success := LoginAttemptsTotal.WithLabelValues("success")
	failure := LoginAttemptsTotal.WithLabelValues("failure")
	beforeSuccess, beforeFailure := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	RecordLogin(true)
	RecordLogin(false)
	RecordLogin(false)

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+2, testutil.ToFloat64(failure))
}
