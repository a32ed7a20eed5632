package mapper

import (
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"
)

type ReplacementMapper struct{}

func NewReplacementMapper() *ReplacementMapper {
	return &ReplacementMapper{}
}

func (m *ReplacementMapper) ToEntity(r *model.ReplacementRequest) *entity.ReplacementRequest {
	if r == nil {
		return nil
	}
	return &entity.ReplacementRequest{
		Id:             r.Id,
		UserId:         r.UserId,
		WeekStartDate:  r.WeekStartDate,
		MonthlyCount:   r.MonthlyCount,
		Reason:         r.Reason,
		Status:         entity.ReplacementStatus(r.Status),
		AdminNotes:     r.AdminNotes,
		AppliedOrderId: r.AppliedOrderId,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *ReplacementMapper) ToModel(r *entity.ReplacementRequest) *model.ReplacementRequest {
	if r == nil {
		return nil
	}
	return &model.ReplacementRequest{
		Id:             r.Id,
		UserId:         r.UserId,
		WeekStartDate:  r.WeekStartDate,
		MonthlyCount:   r.MonthlyCount,
		Reason:         r.Reason,
		Status:         string(r.Status),
		AdminNotes:     r.AdminNotes,
		AppliedOrderId: r.AppliedOrderId,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
