package model

type ProductCategory struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
