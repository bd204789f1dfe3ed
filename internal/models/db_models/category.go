package db_models

// Category groups products for storefront filtering.
type Category struct {
	BaseModel
	Name        string    `gorm:"unique;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
