package seed

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
)

// ImportResult counts what ImportProducts did.
type ImportResult struct {
	Created int
	Skipped int
}

// ImportProducts inserts products into a catalog that may already be
// populated. Blank slugs are derived from the title; duplicates are
// skipped rather than failing the batch.
func ImportProducts(products repository.ProductRepository, batch []model.Product) (*ImportResult, error) {
	result := &Result{}
	created := 0
	for i := range batch {
		if batch[i].Slug == "" {
			batch[i].Slug = Slugify(batch[i].Title)
		}
		ok, err := result.created(products.CreateProduct(&batch[i]), "product", batch[i].Slug)
		if err != nil {
			return nil, err
		}
		if ok {
			created++
		}
	}
	return &ImportResult{Created: created, Skipped: result.Skipped}, nil
}
