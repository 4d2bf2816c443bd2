package model

type Testimonial struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	ProjectType  string `gorm:"not null" json:"project_type"`
	Content      string `gorm:"type:text;not null" json:"content"`
	Rating       Rating `gorm:"not null" json:"rating"`
	Initials     string `json:"initials"`
	DisplayOrder *int   `json:"display_order"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
