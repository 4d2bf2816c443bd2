package model

// Product is a catalog item. Category holds the category *name*, not an id:
// seed documents only carry names, so category joins are by name equality.
// Prices are in minor currency units (paise/cents).
type Product struct {
	ID          string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"type:varchar(191);uniqueIndex;not null" json:"slug"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Price       int64      `gorm:"not null" json:"price"`
	SalePrice   *int64     `json:"sale_price"`
	Image       string     `json:"image"`
	Category    string     `gorm:"type:varchar(128);not null;index" json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	Tags        StringList `json:"tags"`
	Material    string     `json:"material"`
	Dimensions  string     `json:"dimensions"`
	Color       string     `json:"color"`
	Rating      Rating     `gorm:"not null" json:"rating"`
	InStock     bool       `gorm:"not null" json:"in_stock"`
	IsNew       bool       `gorm:"not null" json:"is_new"`
	IsFeatured  bool       `gorm:"not null;index" json:"is_featured"`
	ImageURLs   StringList `json:"image_urls"`
}

func (Product) TableName() string {
	return "products"
}

// ProductIDPrefix is prepended to generated product ids ("f1", "f2", ...).
const ProductIDPrefix = "f"
