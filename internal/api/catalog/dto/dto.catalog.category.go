package catalogdto

// CategoryCreateInput là input để tạo danh mục sản phẩm
type CategoryCreateInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CategoryUpdateInput là input để cập nhật danh mục sản phẩm
type CategoryUpdateInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
