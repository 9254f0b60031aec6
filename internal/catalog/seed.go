// internal/catalog/seed.go
package catalog

import "github.com/animestreet/storefront-api/internal/models"

var allSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Seed returns the fixed storefront catalog.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:   "ben-10-jacket",
			Name: "Ben 10 Omnitrix Jacket",
			Description: "Neon green and black aesthetic jacket inspired by Ben 10's iconic Omnitrix. " +
				"Features glow-in-the-dark accents and premium streetwear construction.",
			Price:    79.99,
			Image:    "/ben10-streetwear-jacket.png",
			Images:   []string{"/ben-10-jacket.png", "/ben-10-jacket-back.png", "/ben-10-jacket-glow.png"},
			Sizes:    allSizes,
			Category: "Ben 10",
			Featured: true,
			Colors:   models.ProductColors{Primary: "#10b981", Secondary: "#1f2937"},
		},
		{
			ID:   "naruto-jacket",
			Name: "Naruto Leaf Village Jacket",
			Description: "Orange and black jacket with authentic Leaf Village details. " +
				"Premium embroidered logos and ninja-inspired design elements.",
			Price:    89.99,
			Image:    "/naruto-inspired-jacket.png",
			Images:   []string{"/naruto-jacket.png", "/naruto-jacket-back.png", "/placeholder-4naic.png"},
			Sizes:    allSizes,
			Category: "Naruto",
			Featured: true,
			Colors:   models.ProductColors{Primary: "#f97316", Secondary: "#1f2937"},
		},
		{
			ID:   "generator-rex-jacket",
			Name: "Generator Rex Tech Jacket",
			Description: "Futuristic blue and white design inspired by Rex's nanite powers. " +
				"Features tech-inspired patterns and metallic accents.",
			Price:    84.99,
			Image:    "/futuristic-tech-jacket.png",
			Images:   []string{"/generator-rex-jacket.png", "/generator-rex-jacket-evo.png", "/generator-rex-jacket-details.png"},
			Sizes:    allSizes,
			Category: "Generator Rex",
			Featured: true,
			Colors:   models.ProductColors{Primary: "#3b82f6", Secondary: "#f8fafc"},
		},
		{
			ID:   "spiderman-jacket",
			Name: "Spider-Man Web Jacket",
			Description: "Classic red and blue design with spider logo and web patterns. " +
				"Premium quality with authentic Marvel styling.",
			Price:    94.99,
			Image:    "/spider-jacket.png",
			Images:   []string{"/spider-man-jacket.png", "/spider-man-jacket.png", "/placeholder.svg?height=600&width=600"},
			Sizes:    allSizes,
			Category: "Spider-Man",
			Featured: true,
			Colors:   models.ProductColors{Primary: "#dc2626", Secondary: "#1d4ed8"},
		},
		{
			ID:   "attack-titan-jacket",
			Name: "Attack on Titan Scout Jacket",
			Description: "Military-inspired green jacket with Survey Corps emblem. " +
				"Features authentic straps and tactical design elements.",
			Price: 92.99,
			Image: "/placeholder.svg?height=400&width=400",
			Images: []string{
				"/placeholder.svg?height=600&width=600",
				"/placeholder.svg?height=600&width=600",
				"/placeholder.svg?height=600&width=600",
			},
			Sizes:    allSizes,
			Category: "Attack on Titan",
			Featured: false,
			Colors:   models.ProductColors{Primary: "#16a34a", Secondary: "#78716c"},
		},
		{
			ID:   "demon-slayer-jacket",
			Name: "Demon Slayer Tanjiro Jacket",
			Description: "Traditional Japanese-inspired design with checkered pattern. " +
				"Features authentic Demon Slayer Corps styling.",
			Price: 87.99,
			Image: "/placeholder.svg?height=400&width=400",
			Images: []string{
				"/placeholder.svg?height=600&width=600",
				"/placeholder.svg?height=600&width=600",
				"/placeholder.svg?height=600&width=600",
			},
			Sizes:    allSizes,
			Category: "Demon Slayer",
			Featured: false,
			Colors:   models.ProductColors{Primary: "#059669", Secondary: "#1f2937"},
		},
	}
}
