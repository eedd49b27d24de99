package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	gDto "stayhub/shared/dto"
)

func TestSalesSortDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty defaults to ascending",
			input:    "",
			expected: gDto.SortDirAsc,
		},
		{
			name:     "asc stays ascending",
			input:    "asc",
			expected: gDto.SortDirAsc,
		},
		{
			name:     "desc flips to descending",
			input:    "desc",
			expected: gDto.SortDirDesc,
		},
		{
			name:     "uppercase desc flips to descending",
			input:    "DESC",
			expected: gDto.SortDirDesc,
		},
		{
			name:     "unknown value defaults to ascending",
			input:    "sideways",
			expected: gDto.SortDirAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, salesSortDir(tt.input))
		})
	}
}

func TestBuildSalesWhere(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

	t.Run("tenant scope only", func(t *testing.T) {
		where, args := buildSalesWhere(SalesQuery{TenantID: "tenant-1"})

		assert.Equal(t, "p.tenant_id = :tenant_id", where)
		assert.Equal(t, "tenant-1", args["tenant_id"])
		assert.NotContains(t, args, "start_date")
		assert.NotContains(t, args, "end_date")
	})

	t.Run("both bounds", func(t *testing.T) {
		where, args := buildSalesWhere(SalesQuery{TenantID: "tenant-1", StartDate: &start, EndDate: &end})

		assert.Equal(t, "p.tenant_id = :tenant_id AND b.created_at >= :start_date AND b.created_at <= :end_date", where)
		assert.Equal(t, start, args["start_date"])
		assert.Equal(t, end, args["end_date"])
	})
}
