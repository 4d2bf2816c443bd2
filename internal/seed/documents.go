package seed

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/goccy/go-json"
)

var errNoUsableRecords = errors.New("document has no usable records")

// documentID accepts ids written either as JSON strings or numbers.
type documentID string

func (id *documentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = documentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = documentID(n.String())
	return nil
}

type productDocument struct {
	ID          documentID `json:"id"`
	Title       string     `json:"title"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	SalePrice   *int64     `json:"salePrice"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	Tags        []string   `json:"tags"`
	Material    string     `json:"material"`
	Dimensions  string     `json:"dimensions"`
	Color       string     `json:"color"`
	Rating      float64    `json:"rating"`
	InStock     *bool      `json:"inStock"`
	IsNew       bool       `json:"isNew"`
	IsFeatured  bool       `json:"isFeatured"`
	ImageURLs   []string   `json:"imageUrls"`
}

func (d productDocument) toModel() (model.Product, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = strings.TrimSpace(d.Name)
	}
	if title == "" {
		return model.Product{}, errors.New("missing title")
	}
	if d.Category == "" {
		return model.Product{}, errors.New("missing category")
	}
	if d.Price < 0 {
		return model.Product{}, errors.New("negative price")
	}

	slug := d.Slug
	if slug == "" {
		slug = Slugify(title)
	}
	inStock := true
	if d.InStock != nil {
		inStock = *d.InStock
	}
	image := d.Image
	if image == "" && len(d.ImageURLs) > 0 {
		image = d.ImageURLs[0]
	}

	return model.Product{
		ID:          string(d.ID),
		Title:       title,
		Slug:        slug,
		Description: d.Description,
		Price:       d.Price,
		SalePrice:   d.SalePrice,
		Image:       image,
		Category:    d.Category,
		Subcategory: d.Subcategory,
		Tags:        model.StringList(d.Tags),
		Material:    d.Material,
		Dimensions:  d.Dimensions,
		Color:       d.Color,
		Rating:      model.NormalizeRating(d.Rating),
		InStock:     inStock,
		IsNew:       d.IsNew,
		IsFeatured:  d.IsFeatured,
		ImageURLs:   model.StringList(d.ImageURLs),
	}, nil
}

type projectDocument struct {
	ID          documentID `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Style       string     `json:"style"`
	Budget      string     `json:"budget"`
	Location    string     `json:"location"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	ImageURLs   []string   `json:"imageUrls"`
	VideoURL    *string    `json:"videoUrl"`
	IsFeatured  bool       `json:"isFeatured"`
}

func (d projectDocument) toModel() (model.InteriorProject, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return model.InteriorProject{}, errors.New("missing title")
	}

	slug := d.Slug
	if slug == "" {
		slug = Slugify(title)
	}
	image := d.Image
	if image == "" && len(d.ImageURLs) > 0 {
		image = d.ImageURLs[0]
	}

	return model.InteriorProject{
		ID:          string(d.ID),
		Title:       title,
		Slug:        slug,
		Style:       d.Style,
		Budget:      d.Budget,
		Location:    d.Location,
		Image:       image,
		Description: d.Description,
		Category:    d.Category,
		ImageURLs:   model.StringList(d.ImageURLs),
		VideoURL:    d.VideoURL,
		IsFeatured:  d.IsFeatured,
	}, nil
}

// recordError describes one rejected record of an otherwise valid document.
type recordError struct {
	Index int
	Err   error
}

// decodeRecords splits a JSON array into elements and converts each one on
// its own, so a malformed record is rejected without sinking the rest.
func decodeRecords[D any, M any](data []byte, convert func(D) (M, error)) ([]M, []recordError, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	var records []M
	var rejected []recordError
	for i, element := range raw {
		var doc D
		if err := json.Unmarshal(element, &doc); err != nil {
			rejected = append(rejected, recordError{Index: i, Err: err})
			continue
		}
		record, err := convert(doc)
		if err != nil {
			rejected = append(rejected, recordError{Index: i, Err: err})
			continue
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, rejected, errNoUsableRecords
	}
	return records, rejected, nil
}

func decodeProducts(data []byte) ([]model.Product, []recordError, error) {
	return decodeRecords(data, productDocument.toModel)
}

func decodeProjects(data []byte) ([]model.InteriorProject, []recordError, error) {
	return decodeRecords(data, projectDocument.toModel)
}

// Slugify lower-cases s and joins its alphanumeric runs with hyphens:
// "Oak & Cane Chair" -> "oak-cane-chair".
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
