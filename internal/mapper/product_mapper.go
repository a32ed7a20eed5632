package mapper

import (
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:                   p.Id,
		Slug:                 p.Slug,
		Name:                 p.Name,
		Type:                 entity.ProductType(p.Type),
		Description:          p.Description,
		Price:                p.Price,
		IsActive:             p.IsActive,
		InStock:              p.InStock,
		SubscriptionEligible: p.SubscriptionEligible,
		CategoryId:           p.CategoryId,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:                   p.Id,
		Slug:                 p.Slug,
		Name:                 p.Name,
		Type:                 string(p.Type),
		Description:          p.Description,
		Price:                p.Price,
		IsActive:             p.IsActive,
		InStock:              p.InStock,
		SubscriptionEligible: p.SubscriptionEligible,
		CategoryId:           p.CategoryId,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
