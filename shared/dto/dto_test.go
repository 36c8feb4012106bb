package dto_test

import (
	"dormy/shared/constant"
	"dormy/shared/dto"
	"dormy/shared/model"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(time.Hour)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "landlord-1",
		ModifiedBy: "admin-1",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "landlord-1", metadata.CreatedBy)
	assert.Equal(t, "admin-1", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        map[string]string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    map[string]string{"page": "2", "limit": "20", "sort_by": "price", "sort_dir": "asc"},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: "ASC"},
		},
		{
			name:         "defaults applied",
			query:        map[string]string{},
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "negative page ignored",
			query:        map[string]string{"page": "-1"},
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "garbage limit ignored",
			query:        map[string]string{"limit": "ten"},
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    map[string]string{"limit": "5000"},
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:     "unknown sort direction dropped",
			query:    map[string]string{"sort_dir": "sideways"},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range tt.query {
				values.Set(k, v)
			}

			req := httptest.NewRequest("GET", "/v1/listings?"+values.Encode(), nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSortAndOffset(t *testing.T) {
	params := dto.QueryParams{Page: 3, Limit: 10, SortBy: "password"}
	params.RestrictSort("price", "created_at")

	assert.Empty(t, params.SortBy)
	assert.Equal(t, 20, params.Offset())

	params.SortBy = "price"
	params.RestrictSort("price")
	assert.Equal(t, "price", params.SortBy)
}

func TestNewPagination(t *testing.T) {
	p := dto.NewPagination(dto.QueryParams{Page: 1, Limit: 10}, 21)

	assert.Equal(t, 3, p.TotalPage)
	assert.Equal(t, 21, p.TotalData)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		clause   string
		argCount int
	}{
		{"eq with table", dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq, Table: "listings"}, "listings.status = :status", 1},
		{"explicit arg name", dto.Filter{ArgName: "min_price", Field: "price", Value: 500, Operator: dto.FilterOperatorGreaterEq}, "price >= :min_price", 1},
		{"like", dto.Filter{Field: "title", Value: "dorm", Operator: dto.FilterOperatorLike}, "LOWER(title) LIKE LOWER(:title)", 1},
		{"in slice", dto.Filter{Field: "status", Value: []string{"reserved", "occupied"}, Operator: dto.FilterOperatorIn}, "status IN (:status_0, :status_1)", 2},
		{"not in slice", dto.Filter{Field: "status", Value: []string{"reserved"}, Operator: dto.FilterOperatorNotIn}, "status NOT IN (:status_0)", 1},
		{"empty in", dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn}, "1 = 0", 0},
		{"is null", dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull}, "deleted_at IS NULL", 0},
		{"plain", dto.Filter{Value: "a = b", Operator: dto.FilterPlainQuery}, "(a = b)", 0},
		{"unknown", dto.Filter{Field: "x", Operator: "between"}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.clause, clause)
			assert.Len(t, args, tt.argCount)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	group.Add(
		dto.Filter{Field: "landlord_id", Value: "u1", Operator: dto.FilterOperatorEq},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{ArgName: "s1", Field: "status", Value: "available", Operator: dto.FilterOperatorEq},
				dto.Filter{ArgName: "s2", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			},
		},
		"ignored",
	)

	clause, args := group.GetWhereClause()

	assert.Equal(t, "(landlord_id = :landlord_id AND (status = :s1 OR status = :s2))", clause)
	assert.Len(t, args, 3)
	assert.True(t, strings.HasPrefix(clause, "("))

	empty := dto.FilterGroup{}
	clause, _ = empty.GetWhereClause()
	assert.Empty(t, clause)
}
