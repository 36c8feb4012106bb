package dto

import (
	"dormy/shared/constant"
	"dormy/shared/model"
	"dormy/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

// Pagination is attached to every list response.
type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalData int `json:"total_data"`
	TotalPage int `json:"total_page"`
}

func NewPagination(params QueryParams, total int) Pagination {
	p := Pagination{Page: params.Page, Limit: params.Limit, TotalData: total}
	if params.Limit > 0 {
		p.TotalPage = (total + params.Limit - 1) / params.Limit
	}

	return p
}
