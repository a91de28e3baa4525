package dto

// Category Input DTOs

// CreateCategoryInput contains the fields for creating a category
type CreateCategoryInput struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"required,category_icon"`
	Color       string `json:"color" validate:"required,category_color"`
}

// UpdateCategoryInput contains the optional fields for a partial category
// update. Nil pointers leave the stored value untouched.
type UpdateCategoryInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,category_icon"`
	Color       *string `json:"color" validate:"omitempty,category_color"`
}

// IsEmpty reports whether the update carries no fields at all.
func (i *UpdateCategoryInput) IsEmpty() bool {
	return i.Title == nil && i.Description == nil && i.Icon == nil && i.Color == nil
}
