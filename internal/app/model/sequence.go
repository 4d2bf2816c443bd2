package model

// IDSequence backs generated string ids ("f12", "p3") in relational storage.
type IDSequence struct {
	Name  string `gorm:"primaryKey;type:varchar(64)"`
	Value int64  `gorm:"not null"`
}

func (IDSequence) TableName() string {
	return "id_sequences"
}

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&ProductCategory{},
		&Product{},
		&InteriorProject{},
		&BlogPost{},
		&ConsultationRequest{},
		&CartItem{},
		&WishlistItem{},
		&Testimonial{},
		&IDSequence{},
	}
}
