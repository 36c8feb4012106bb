package service

import (
	"context"
	"dormy/internal/domains/reservation/model"
	"dormy/internal/domains/reservation/model/dto"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Reservations"

var exportHeader = []any{
	"Reservation ID", "Listing", "Room type", "Price", "Tenant", "Gender", "Age",
	"Phone", "Email", "Address", "Payment reference", "Requested at",
}

// ExportForLandlord renders every outstanding reservation of the caller as
// an xlsx workbook, newest first.
func (s *serviceImpl) ExportForLandlord(ctx context.Context) (_ []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportForLandlord")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := identity.FromContext(ctx)
	if !caller.Is(constant.RoleLandlord) {
		return nil, failure.Forbidden("only landlords can export reservations") // nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, byUser(model.FieldLandlordID, caller.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations for export")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	scope.SetAttribute("export.rows", len(models))

	return workbook(models)
}

func workbook(models []model.Reservation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	lastColumn, _ := excelize.ColumnNumberToName(len(exportHeader))

	if err = f.SetCellStyle(exportSheet, "A1", lastColumn+"1", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	if err = f.SetColWidth(exportSheet, "A", lastColumn, 20); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	for i, m := range models {
		var r dto.ReservationResponse
		r.FromModel(m)

		row := []any{
			r.ID, r.ListingName, r.RoomType, r.Price, r.Tenant.Name, r.Tenant.Gender, r.Tenant.Age,
			r.Tenant.Phone, r.Tenant.Email, r.Tenant.Address, r.PaymentReference, r.CreatedAt,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)

		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf.Bytes(), nil
}
