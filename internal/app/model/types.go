package model

import (
	"database/sql/driver"
	"encoding/json"
	"math"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is an ordered list of strings. PostgreSQL stores it as text[];
// other dialects get the same array literal in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

func (StringList) GormDataType() string {
	return "string_list"
}

func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// MarshalJSON encodes a nil list as [] so clients never see null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Rating is stored in tenths of a star: 45 means 4.5 stars.
type Rating int

const MaxRating Rating = 50

// Stars returns the display value, e.g. 4.5.
func (r Rating) Stars() float64 {
	return float64(r) / 10
}

// NormalizeRating converts a raw fixture rating to tenths. Values 0..5 are
// whole stars; anything above is already in tenths. The result is clamped
// to 0..MaxRating.
func NormalizeRating(raw float64) Rating {
	if raw <= 5 {
		raw *= 10
	}
	r := Rating(math.Round(raw))
	if r < 0 {
		return 0
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
