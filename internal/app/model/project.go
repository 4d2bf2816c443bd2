package model

// InteriorProject is a portfolio entry. Budget is free text such as "12L".
type InteriorProject struct {
	ID          string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"type:varchar(191);uniqueIndex;not null" json:"slug"`
	Style       string     `json:"style"`
	Budget      string     `json:"budget"`
	Location    string     `json:"location"`
	Image       string     `json:"image"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Category    string     `gorm:"type:varchar(128);index" json:"category"`
	ImageURLs   StringList `json:"image_urls"`
	VideoURL    *string    `json:"video_url"`
	IsFeatured  bool       `gorm:"not null;index" json:"is_featured"`
}

func (InteriorProject) TableName() string {
	return "interior_projects"
}

const ProjectIDPrefix = "p"
