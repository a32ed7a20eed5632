package mapper

import (
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"
)

type GiftMapper struct{}

func NewGiftMapper() *GiftMapper {
	return &GiftMapper{}
}

func (m *GiftMapper) DeliveryToEntity(g *model.GiftDelivery) *entity.GiftDelivery {
	if g == nil {
		return nil
	}
	return &entity.GiftDelivery{
		Id:             g.Id,
		OrderId:        g.OrderId,
		GiftType:       entity.GiftType(g.GiftType),
		SeniorCenterId: g.SeniorCenterId,
		CustomName:     g.CustomName,
		CustomAddress:  g.CustomAddress,
		Status:         entity.GiftStatus(g.Status),
		DeliveryDate:   g.DeliveryDate,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func (m *GiftMapper) DeliveryToModel(g *entity.GiftDelivery) *model.GiftDelivery {
	if g == nil {
		return nil
	}
	return &model.GiftDelivery{
		Id:             g.Id,
		OrderId:        g.OrderId,
		GiftType:       string(g.GiftType),
		SeniorCenterId: g.SeniorCenterId,
		CustomName:     g.CustomName,
		CustomAddress:  g.CustomAddress,
		Status:         string(g.Status),
		DeliveryDate:   g.DeliveryDate,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func (m *GiftMapper) CenterToEntity(c *model.SeniorCenter) *entity.SeniorCenter {
	if c == nil {
		return nil
	}
	return &entity.SeniorCenter{
		Id:        c.Id,
		Name:      c.Name,
		Address:   c.Address,
		Region:    c.Region,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *GiftMapper) CenterToModel(c *entity.SeniorCenter) *model.SeniorCenter {
	if c == nil {
		return nil
	}
	return &model.SeniorCenter{
		Id:        c.Id,
		Name:      c.Name,
		Address:   c.Address,
		Region:    c.Region,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
