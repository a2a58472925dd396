package handlers

import "fleet-dispatch-go/internal/domain"

func (d tripRequestDTO) toModel(tenantID, tripID int64) domain.TripRequest {
	return domain.TripRequest{
		TenantID:     tenantID,
		TripID:       tripID,
		ClientID:     d.ClientID,
		DriverID:     d.DriverID,
		VehicleID:    d.VehicleID,
		Period:       domain.Interval{Start: d.StartTime.UTC(), End: d.EndTime.UTC()},
		Status:       domain.TripStatus(d.Status),
		Description:  d.Description,
		ClientBooked: d.ClientBooked,
	}
}

func tripToResponse(t *domain.Trip) tripDTO {
	return tripDTO{
		ID:          t.ID,
		ClientID:    t.ClientID,
		DriverID:    t.DriverID,
		VehicleID:   t.VehicleID,
		VehicleType: string(t.VehicleType),
		StartTime:   t.Period.Start,
		EndTime:     t.Period.End,
		Status:      string(t.Status),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func rejectionsToResponse(rejs domain.Rejections) []rejectionDTO {
	out := make([]rejectionDTO, 0, len(rejs))
	for _, rej := range rejs {
		dto := rejectionDTO{
			Code:    string(rej.Code),
			Field:   rej.Field,
			Message: rej.Message,
		}
		if rej.Conflict != nil {
			dto.Conflict = &conflictDTO{
				TripID:    rej.Conflict.TripID,
				StartTime: rej.Conflict.Period.Start,
				EndTime:   rej.Conflict.Period.End,
			}
		}
		out = append(out, dto)
	}
	return out
}
