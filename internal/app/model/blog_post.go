package model

import "time"

// BlogPost content is stored verbatim. Lines starting with "##" are
// headings and lines starting with "-" are list items; rendering is left
// to the client.
type BlogPost struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"type:varchar(191);uniqueIndex;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Category    string     `gorm:"not null" json:"category"`
	ImageURL    string     `json:"image_url"`
	PublishDate time.Time  `gorm:"not null;index" json:"publish_date"`
	ReadTime    string     `json:"read_time"`
	Author      string     `json:"author"`
	Tags        StringList `json:"tags"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
