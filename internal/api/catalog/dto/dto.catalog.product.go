// Package catalogdto chứa DTO cho domain catalog (Product, Category).
package catalogdto

// ProductCreateInput là input để tạo sản phẩm
type ProductCreateInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ProductUpdateInput là input để cập nhật sản phẩm
type ProductUpdateInput struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Quantity    int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
