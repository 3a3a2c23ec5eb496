// Package notificationdto chứa DTO cho domain notification.
package notificationdto

// MarkReadInput là input để đánh dấu một item trong feed đã đọc.
type MarkReadInput struct {
	ItemType string `json:"itemType" validate:"required,oneof=order feedback low_stock"`
	ItemID   string `json:"itemId" validate:"required"`
}
