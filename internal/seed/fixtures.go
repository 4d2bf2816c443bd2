package seed

import (
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func categoryFixtures() []model.ProductCategory {
	return []model.ProductCategory{
		{Name: "Living Room", Slug: "living-room", Description: "Sofas, coffee tables and lounge seating", ImageURL: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc"},
		{Name: "Bedroom", Slug: "bedroom", Description: "Beds, wardrobes and bedside storage", ImageURL: "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af"},
		{Name: "Dining Room", Slug: "dining-room", Description: "Dining tables, chairs and sideboards", ImageURL: "https://images.unsplash.com/photo-1597075687490-8f673c6c17f6"},
		{Name: "Kitchen", Slug: "kitchen", Description: "Modular cabinets, islands and bar stools", ImageURL: "https://images.unsplash.com/photo-1588854337236-6889d631faa8"},
		{Name: "Office", Slug: "office", Description: "Desks, shelving and ergonomic chairs", ImageURL: "https://images.unsplash.com/photo-1585412727339-54e4bae3bbf9"},
	}
}

// defaultProduct is inserted when the product document cannot be used.
func defaultProduct() model.Product {
	return model.Product{
		ID:          "f000",
		Title:       "Emerald Velvet Sofa",
		Slug:        "emerald-velvet-sofa",
		Description: "Luxurious emerald velvet sofa with gold-finished legs",
		Price:       129900,
		Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc",
		Category:    "Living Room",
		Subcategory: "Sofas",
		Tags:        model.StringList{"sofa", "velvet"},
		Material:    "Velvet, Wood",
		Dimensions:  "220x85x75 cm",
		Color:       "Emerald",
		Rating:      45,
		InStock:     true,
		IsNew:       true,
		IsFeatured:  true,
		ImageURLs: model.StringList{
			"https://images.unsplash.com/photo-1555041469-a586c61ea9bc",
			"https://images.unsplash.com/photo-1581539250439-c96689b516dd",
		},
	}
}

// defaultProject is inserted when the project document cannot be used.
func defaultProject() model.InteriorProject {
	return model.InteriorProject{
		ID:          "p000",
		Title:       "Contemporary Urban Kitchen",
		Slug:        "contemporary-urban-kitchen",
		Style:       "Modern",
		Budget:      "12L",
		Location:    "Mumbai",
		Image:       "https://images.unsplash.com/photo-1588854337236-6889d631faa8",
		Description: "A sleek and functional kitchen design for a downtown apartment.",
		Category:    "Modular Kitchen",
		IsFeatured:  true,
		ImageURLs: model.StringList{
			"https://images.unsplash.com/photo-1588854337236-6889d631faa8",
			"https://images.unsplash.com/photo-1565183928294-7063f23ce0f8",
		},
	}
}

func projectFixtures() []model.InteriorProject {
	return []model.InteriorProject{
		{
			Title:       "Contemporary Urban Kitchen",
			Slug:        "contemporary-urban-kitchen",
			Style:       "Modern",
			Budget:      "12L",
			Location:    "Mumbai",
			Image:       "https://images.unsplash.com/photo-1588854337236-6889d631faa8",
			Description: "A sleek and functional kitchen design for a downtown apartment.",
			Category:    "Modular Kitchen",
			IsFeatured:  true,
		},
		{
			Title:       "Luxury Master Bedroom",
			Slug:        "luxury-master-bedroom",
			Style:       "Classic",
			Budget:      "8L",
			Location:    "Bengaluru",
			Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af",
			Description: "An elegant master bedroom with custom headboard and premium furnishings.",
			Category:    "Residential",
			IsFeatured:  true,
		},
		{
			Title:       "Minimalist Living Space",
			Slug:        "minimalist-living-space",
			Style:       "Minimalist",
			Budget:      "6L",
			Location:    "Pune",
			Image:       "https://images.unsplash.com/photo-1565182999561-18d7dc61c393",
			Description: "A clean and open living room design with thoughtfully selected furniture pieces.",
			Category:    "Residential",
		},
	}
}

// Blog content uses "##" lines for headings and "-" lines for list items.
const (
	natureContent = "Bringing natural elements into your home creates a calmer, more balanced environment.\n" +
		"## Start with plants\n" +
		"- Trailing pothos for high shelves\n" +
		"- A fiddle-leaf fig beside a bright window\n" +
		"## Choose natural materials\n" +
		"Jute, rattan and solid wood age well and soften modern lines."

	colorContent = "Colors shape mood, focus and rest.\n" +
		"## Warm tones\n" +
		"- Terracotta and ochre for social spaces\n" +
		"## Cool tones\n" +
		"- Sage and slate blue for bedrooms and studies"

	smallSpaceContent = "A compact home does not have to sacrifice style.\n" +
		"## Go vertical\n" +
		"- Floor-to-ceiling shelving\n" +
		"- Wall-mounted desks that fold away"
)

func blogPostFixtures() []model.BlogPost {
	return []model.BlogPost{
		{
			Title:       "10 Ways to Bring Nature Into Your Living Space",
			Slug:        "10-ways-to-bring-nature-into-your-living-space",
			Content:     natureContent,
			Excerpt:     "Discover how to incorporate natural elements for a more peaceful home environment.",
			Category:    "Interior Design",
			ImageURL:    "https://images.unsplash.com/photo-1594292562756-26f28e678d44",
			PublishDate: date(2023, time.May, 12),
			ReadTime:    "5 min read",
			Author:      "Ananya Rao",
			Tags:        model.StringList{"biophilic", "plants"},
		},
		{
			Title:       "The Psychology of Color in Interior Design",
			Slug:        "psychology-of-color-in-interior-design",
			Content:     colorContent,
			Excerpt:     "Learn how different colors affect your mood and which ones to choose for each room.",
			Category:    "Design Tips",
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7",
			PublishDate: date(2023, time.April, 28),
			ReadTime:    "4 min read",
			Author:      "Vikram Shah",
			Tags:        model.StringList{"color", "mood"},
		},
		{
			Title:       "Small Space Solutions: Maximizing Your Square Footage",
			Slug:        "small-space-solutions",
			Content:     smallSpaceContent,
			Excerpt:     "Smart design solutions to make the most of limited square footage.",
			Category:    "Space Planning",
			ImageURL:    "https://images.unsplash.com/photo-1583847268964-b28dc8f51f92",
			PublishDate: date(2023, time.April, 15),
			ReadTime:    "6 min read",
			Author:      "Ananya Rao",
			Tags:        model.StringList{"small spaces", "storage"},
		},
	}
}

// testimonialFixture keeps the raw rating; some entries use whole stars,
// others tenths.
type testimonialFixture struct {
	model.Testimonial
	rawRating float64
}

func testimonialFixtures() []testimonialFixture {
	return []testimonialFixture{
		{
			Testimonial: model.Testimonial{
				Name:         "Jennifer S.",
				ProjectType:  "Full Home Design",
				Content:      "Working with FeatherWood transformed our house into the elegant home we always envisioned.",
				Initials:     "JS",
				DisplayOrder: intPtr(1),
			},
			rawRating: 5,
		},
		{
			Testimonial: model.Testimonial{
				Name:         "Michael R.",
				ProjectType:  "Living Room & Kitchen",
				Content:      "The team helped us redesign our living room and kitchen. Beautiful and perfectly functional.",
				Initials:     "MR",
				DisplayOrder: intPtr(2),
			},
			rawRating: 45,
		},
		{
			Testimonial: model.Testimonial{
				Name:         "Sarah L.",
				ProjectType:  "Furniture Purchase",
				Content:      "I ordered several furniture pieces and could not be happier with the quality.",
				Initials:     "SL",
				DisplayOrder: intPtr(3),
			},
			rawRating: 4,
		},
	}
}
