package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalList_NilBecomesEmptyArray(t *testing.T) {
	data, err := marshalList(nil)
	require.NoError(t, err)

	assert.Equal(t, "[]", string(data))
}

func TestMarshalList_PreservesOrder(t *testing.T) {
	data, err := marshalList([]string{"Python", "Go"})
	require.NoError(t, err)

	assert.JSONEq(t, `["Python","Go"]`, string(data))
}

func TestJobPostingColumns_MatchInsertPlaceholders(t *testing.T) {
	// The insert statement binds one placeholder per column.
	columns := strings.Split(jobPostingColumns, ",")

	assert.Len(t, columns, 18)
}

func TestJobPostingsSchema_CoversAllColumns(t *testing.T) {
	for _, column := range strings.Split(jobPostingColumns, ",") {
		assert.Contains(t, jobPostingsSchema, strings.TrimSpace(column))
	}
}
