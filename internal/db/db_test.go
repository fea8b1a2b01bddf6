package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talentdesk/internal/types"
)

func TestSchema_DefinesEveryTable(t *testing.T) {
	schema := Schema()
	for _, table := range []string{"job_postings", "candidates", "interviews", "imported_cvs"} {
		assert.True(t, strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table+" ("), "missing table %s", table)
	}
	assert.Contains(t, schema, "profile       JSONB NOT NULL")
}

func TestStatusesFor(t *testing.T) {
	tests := []struct {
		filter types.CVFilter
		want   []string
	}{
		{types.CVFilterAll, []string{"pending", "approved"}},
		{types.CVFilterPending, []string{"pending"}},
		{types.CVFilterApproved, []string{"approved"}},
		{types.CVFilterRejected, []string{"rejected"}},
		{types.CVFilter("bogus"), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, statusesFor(tt.filter))
		})
	}
}
