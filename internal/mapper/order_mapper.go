package mapper

import (
	"encoding/json"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"

	"gorm.io/datatypes"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var items []entity.LineItem
	// Items were written by ToModel from plain structs; a decode failure
	// means a manually corrupted row, surfaced as an empty item list
	// rather than a lost order.
	_ = json.Unmarshal(o.Items, &items)

	var giftType *entity.GiftType
	if o.GiftType != nil {
		gt := entity.GiftType(*o.GiftType)
		giftType = &gt
	}

	return &entity.Order{
		Id:                   o.Id,
		UserId:               o.UserId,
		Type:                 entity.OrderType(o.Type),
		Items:                items,
		Subtotal:             o.Subtotal,
		ShippingFee:          o.Shipping,
		Total:                o.Total,
		Currency:             o.Currency,
		Status:               entity.OrderStatus(o.Status),
		StripeSessionId:      o.StripeSessionId,
		StripeSubscriptionId: o.StripeSubscriptionId,
		GiftType:             giftType,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	items, _ := json.Marshal(o.Items)

	var giftType *string
	if o.GiftType != nil {
		gt := string(*o.GiftType)
		giftType = &gt
	}

	return &model.Order{
		Id:                   o.Id,
		UserId:               o.UserId,
		Type:                 string(o.Type),
		Items:                datatypes.JSON(items),
		Subtotal:             o.Subtotal,
		Shipping:             o.ShippingFee,
		Total:                o.Total,
		Currency:             o.Currency,
		Status:               string(o.Status),
		StripeSessionId:      o.StripeSessionId,
		StripeSubscriptionId: o.StripeSubscriptionId,
		GiftType:             giftType,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
