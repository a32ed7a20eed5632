package mapper

import (
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"
)

type SupportMapper struct{}

func NewSupportMapper() *SupportMapper {
	return &SupportMapper{}
}

func (m *SupportMapper) ToEntity(s *model.SupportRequest) *entity.SupportRequest {
	if s == nil {
		return nil
	}
	return &entity.SupportRequest{
		Id:         s.Id,
		UserId:     s.UserId,
		Type:       entity.SupportType(s.Type),
		Message:    s.Message,
		Status:     entity.SupportStatus(s.Status),
		AdminNotes: s.AdminNotes,
		OrderId:    s.OrderId,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (m *SupportMapper) ToModel(s *entity.SupportRequest) *model.SupportRequest {
	if s == nil {
		return nil
	}
	return &model.SupportRequest{
		Id:         s.Id,
		UserId:     s.UserId,
		Type:       string(s.Type),
		Message:    s.Message,
		Status:     string(s.Status),
		AdminNotes: s.AdminNotes,
		OrderId:    s.OrderId,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
