package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     PageRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     PageRequest{Page: 1, PerPage: 10},
			wantErr: nil,
		},
		{
			name:    "zero page",
			req:     PageRequest{Page: 0, PerPage: 10},
			wantErr: ErrInvalidPagination,
		},
		{
			name:    "zero per_page",
			req:     PageRequest{Page: 1, PerPage: 0},
			wantErr: ErrInvalidPagination,
		},
		{
			name:    "negative per_page",
			req:     PageRequest{Page: 1, PerPage: -3},
			wantErr: ErrInvalidPagination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageRequest{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 12, PageRequest{Page: 5, PerPage: 3}.Offset())
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       PageRequest
		count     int
		items     []string
		wantPages int
	}{
		{
			name:      "empty result set has zero pages",
			req:       PageRequest{Page: 1, PerPage: 10},
			count:     0,
			items:     nil,
			wantPages: 0,
		},
		{
			name:      "seven rows at three per page round up to three pages",
			req:       PageRequest{Page: 1, PerPage: 3},
			count:     7,
			items:     []string{"a", "b", "c"},
			wantPages: 3,
		},
		{
			name:      "exact multiple",
			req:       PageRequest{Page: 2, PerPage: 5},
			count:     10,
			items:     []string{"f", "g", "h", "i", "j"},
			wantPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page := NewPage(tt.req, tt.count, tt.items)

			assert.Equal(t, tt.count, page.Count)
			assert.Equal(t, tt.req.Page, page.Page)
			assert.Equal(t, tt.req.PerPage, page.PerPage)
			assert.Equal(t, tt.wantPages, page.Pages)
			require.NotNil(t, page.Items)
		})
	}
}
