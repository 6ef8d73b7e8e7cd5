// Package catalog provides the product catalog API client and types.
package catalog

// Product represents one product entry returned by the catalog API.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// ProductsResponse represents the paginated response from the /products
// endpoint.
type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// ErrorResponse represents an error payload from the catalog API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// BuildProductMap builds the id-keyed snapshot consumed by the enrichment
// step. Later duplicates of an id overwrite earlier ones.
func BuildProductMap(products []Product) map[int]Product {
	mapping := make(map[int]Product, len(products))
	for _, p := range products {
		mapping[p.ID] = p
	}
	return mapping
}
