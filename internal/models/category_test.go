package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name     string
		category Category
		wantErr  bool
		errMsg   string
	}{
		{
			name: "valid category",
			category: Category{
				Title:  "Food",
				Icon:   IconUtensils,
				Color:  ColorBlue,
				UserID: validUserID,
			},
			wantErr: false,
		},
		{
			name: "valid category with description",
			category: Category{
				Title:       "Transport",
				Description: "Fuel, rideshare and parking",
				Icon:        IconCarFront,
				Color:       ColorPurple,
				UserID:      validUserID,
			},
			wantErr: false,
		},
		{
			name: "missing title",
			category: Category{
				Icon:   IconUtensils,
				Color:  ColorBlue,
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "category title is required",
		},
		{
			name: "missing user ID",
			category: Category{
				Title: "Food",
				Icon:  IconUtensils,
				Color: ColorBlue,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "unknown icon token",
			category: Category{
				Title:  "Food",
				Icon:   "fork-and-knife",
				Color:  ColorBlue,
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "invalid category icon",
		},
		{
			name: "unknown color token",
			category: Category{
				Title:  "Food",
				Icon:   IconUtensils,
				Color:  "teal",
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "invalid category color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidCategoryIcon(t *testing.T) {
	for _, icon := range AllCategoryIcons() {
		assert.True(t, IsValidCategoryIcon(icon), icon)
	}
	assert.False(t, IsValidCategoryIcon("briefcase"))
	assert.False(t, IsValidCategoryIcon(""))
}

func TestIsValidCategoryColor(t *testing.T) {
	for _, color := range AllCategoryColors() {
		assert.True(t, IsValidCategoryColor(color), color)
	}
	assert.False(t, IsValidCategoryColor("gray"))
	assert.False(t, IsValidCategoryColor(""))
}
