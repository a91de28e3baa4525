package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Icon tokens available for categories. The client renders these as pictograms;
// the API only guarantees membership in this set.
const (
	IconBriefcaseBusiness = "briefcase-business"
	IconCarFront          = "car-front"
	IconHeartPulse        = "heart-pulse"
	IconPiggyBank         = "piggy-bank"
	IconShoppingCart      = "shopping-cart"
	IconTicket            = "ticket"
	IconToolCase          = "tool-case"
	IconUtensils          = "utensils"
	IconPawPrint          = "paw-print"
	IconHouse             = "house"
	IconGift              = "gift"
	IconDumbbell          = "dumbbell"
	IconBookOpen          = "book-open"
	IconBaggageClaim      = "baggage-claim"
	IconMailbox           = "mailbox"
	IconReceiptText       = "receipt-text"
)

// Color tokens available for categories
const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorPink   = "pink"
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorYellow = "yellow"
)

var (
	ErrInvalidCategoryIcon  = errors.New("invalid category icon")
	ErrInvalidCategoryColor = errors.New("invalid category color")
)

// Category is a user-defined label grouping transactions
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"type:varchar(50);not null" json:"icon"`
	Color       string    `gorm:"type:varchar(20);not null" json:"color"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	// Map-based partial updates carry an empty struct; field values are
	// validated at the service layer in that case
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Title == "" {
		return errors.New("category title is required")
	}

	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidCategoryIcon(c.Icon) {
		return ErrInvalidCategoryIcon
	}

	if !IsValidCategoryColor(c.Color) {
		return ErrInvalidCategoryColor
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// AllCategoryIcons returns all valid icon tokens
func AllCategoryIcons() []string {
	return []string{
		IconBriefcaseBusiness,
		IconCarFront,
		IconHeartPulse,
		IconPiggyBank,
		IconShoppingCart,
		IconTicket,
		IconToolCase,
		IconUtensils,
		IconPawPrint,
		IconHouse,
		IconGift,
		IconDumbbell,
		IconBookOpen,
		IconBaggageClaim,
		IconMailbox,
		IconReceiptText,
	}
}

// AllCategoryColors returns all valid color tokens
func AllCategoryColors() []string {
	return []string{
		ColorGreen,
		ColorBlue,
		ColorPurple,
		ColorPink,
		ColorRed,
		ColorOrange,
		ColorYellow,
	}
}

// IsValidCategoryIcon checks if an icon token is valid
func IsValidCategoryIcon(icon string) bool {
	for _, valid := range AllCategoryIcons() {
		if icon == valid {
			return true
		}
	}
	return false
}

// IsValidCategoryColor checks if a color token is valid
func IsValidCategoryColor(color string) bool {
	for _, valid := range AllCategoryColors() {
		if color == valid {
			return true
		}
	}
	return false
}
