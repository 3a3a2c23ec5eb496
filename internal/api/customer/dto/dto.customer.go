// Package customerdto chứa DTO cho domain customer.
package customerdto

// CustomerCreateInput là input để tạo khách hàng.
// OrderReference nhận hex string của order _id, service convert sang ObjectID.
type CustomerCreateInput struct {
	FullName        string   `json:"fullName" validate:"required"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber   string   `json:"contactNumber,omitempty"`
	DeliveryAddress string   `json:"deliveryAddress,omitempty"`
	OrderReference  []string `json:"orderReference,omitempty" validate:"omitempty,dive,len=24"`
}

// CustomerUpdateInput là input để cập nhật khách hàng.
type CustomerUpdateInput struct {
	FullName        string   `json:"fullName,omitempty"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
	ContactNumber   string   `json:"contactNumber,omitempty"`
	DeliveryAddress string   `json:"deliveryAddress,omitempty"`
	OrderReference  []string `json:"orderReference,omitempty" validate:"omitempty,dive,len=24"`
}
