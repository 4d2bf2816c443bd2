// Package memory implements repository.Storage in process memory.
// Collections keep insertion order and are indexed by key; every read
// returns copies.
package memory

import (
	"sync"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
)

var _ repository.Storage = (*Store)(nil)

type Store struct {
	mu sync.RWMutex

	users         *table[uint, model.User]
	categories    *table[uint, model.ProductCategory]
	products      *table[string, model.Product]
	projects      *table[string, model.InteriorProject]
	blogPosts     *table[uint, model.BlogPost]
	consultations *table[uint, model.ConsultationRequest]
	cartItems     *table[uint, model.CartItem]
	wishlistItems *table[wishlistKey, model.WishlistItem]
	testimonials  *table[uint, model.Testimonial]

	// unique secondary keys
	usernames     map[string]uint
	emails        map[string]uint
	categorySlugs map[string]uint
	productSlugs  map[string]string
	projectSlugs  map[string]string
	blogPostSlugs map[string]uint
	cartLines     map[cartLineKey]uint

	userSeq         uint
	categorySeq     uint
	productSeq      uint
	projectSeq      uint
	blogPostSeq     uint
	consultationSeq uint
	cartItemSeq     uint
	wishlistItemSeq uint
	testimonialSeq  uint
}

type wishlistKey struct {
	userID    uint
	productID string
}

func wishlistKeyOf(item model.WishlistItem) wishlistKey {
	return wishlistKey{userID: item.UserID, productID: item.ProductID}
}

// cartLineKey is the (owner, product) pair a cart row is merged on.
type cartLineKey struct {
	userID    uint
	sessionID string
	productID string
}

func cartLineKeyOf(item model.CartItem) cartLineKey {
	key := cartLineKey{productID: item.ProductID}
	if item.UserID != nil {
		key.userID = *item.UserID
	}
	if item.SessionID != nil {
		key.sessionID = *item.SessionID
	}
	return key
}

func NewStore() *Store {
	return &Store{
		users:         newTable(func(u model.User) uint { return u.ID }),
		categories:    newTable(func(c model.ProductCategory) uint { return c.ID }),
		products:      newTable(func(p model.Product) string { return p.ID }),
		projects:      newTable(func(p model.InteriorProject) string { return p.ID }),
		blogPosts:     newTable(func(p model.BlogPost) uint { return p.ID }),
		consultations: newTable(func(c model.ConsultationRequest) uint { return c.ID }),
		cartItems:     newTable(func(i model.CartItem) uint { return i.ID }),
		wishlistItems: newTable(wishlistKeyOf),
		testimonials:  newTable(func(t model.Testimonial) uint { return t.ID }),

		usernames:     map[string]uint{},
		emails:        map[string]uint{},
		categorySlugs: map[string]uint{},
		productSlugs:  map[string]string{},
		projectSlugs:  map[string]string{},
		blogPostSlugs: map[string]uint{},
		cartLines:     map[cartLineKey]uint{},
	}
}

// assignID gives *id the next counter value, or keeps a caller-supplied
// id if it is free. Counters never move backwards so ids are not reused.
func assignID(seq *uint, id *uint, taken func(uint) bool) error {
	if *id == 0 {
		*seq++
		*id = *seq
		return nil
	}
	if taken(*id) {
		return repository.ErrDuplicate
	}
	if *id > *seq {
		*seq = *id
	}
	return nil
}

func cloneStrings(l model.StringList) model.StringList {
	if l == nil {
		return nil
	}
	return append(model.StringList{}, l...)
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneProduct(p model.Product) model.Product {
	p.SalePrice = cloneInt64(p.SalePrice)
	p.Tags = cloneStrings(p.Tags)
	p.ImageURLs = cloneStrings(p.ImageURLs)
	return p
}

func cloneProject(p model.InteriorProject) model.InteriorProject {
	p.ImageURLs = cloneStrings(p.ImageURLs)
	p.VideoURL = cloneString(p.VideoURL)
	return p
}

func cloneBlogPost(p model.BlogPost) model.BlogPost {
	p.Tags = cloneStrings(p.Tags)
	return p
}

func cloneUser(u model.User) model.User {
	u.PhoneNumber = cloneString(u.PhoneNumber)
	return u
}

func cloneConsultation(c model.ConsultationRequest) model.ConsultationRequest {
	c.BudgetRange = cloneString(c.BudgetRange)
	return c
}

func cloneTestimonial(t model.Testimonial) model.Testimonial {
	if t.DisplayOrder != nil {
		v := *t.DisplayOrder
		t.DisplayOrder = &v
	}
	return t
}

func cloneCartItem(item model.CartItem) model.CartItem {
	model.OwnerOf(item).Apply(&item)
	return item
}

func cloneProjects(in []model.InteriorProject) []model.InteriorProject {
	out := make([]model.InteriorProject, 0, len(in))
	for _, p := range in {
		out = append(out, cloneProject(p))
	}
	return out
}
