package internal

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
)

// ProductsService groups the product catalog endpoints.
type ProductsService struct {
	client *Client
}

// Products returns the product catalog service.
func (c *Client) Products() *ProductsService {
	return &ProductsService{client: c}
}

// ProductFilter narrows a product listing. Zero values are omitted from the
// query string.
type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

func (f ProductFilter) query() url.Values {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	return params
}

// List returns products matching the filter.
func (s *ProductsService) List(ctx context.Context, filter ProductFilter) (Page[Product], error) {
	return getPage[Product](ctx, s.client, withQuery("/products", filter.query()))
}

// Get returns one product by id.
func (s *ProductsService) Get(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.client.Get(ctx, "/products/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create adds a product.
func (s *ProductsService) Create(ctx context.Context, p *Product) (*Product, error) {
	var created Product
	if err := s.client.Post(ctx, "/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a product.
func (s *ProductsService) Update(ctx context.Context, id string, p *Product) (*Product, error) {
	var updated Product
	if err := s.client.Put(ctx, "/products/"+url.PathEscape(id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a product.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/products/"+url.PathEscape(id))
}

// LowStock returns products at or below their reorder point.
func (s *ProductsService) LowStock(ctx context.Context) (Page[Product], error) {
	return getPage[Product](ctx, s.client, "/products/low-stock")
}

// ImportCSV uploads a CSV catalog file as multipart form data.
func (s *ProductsService) ImportCSV(ctx context.Context, fileName string, r io.Reader) (*ImportResult, error) {
	form, err := NewFileForm("file", fileName, r, nil)
	if err != nil {
		return nil, err
	}
	var result ImportResult
	if err := s.client.Post(ctx, "/products/import", form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadImage attaches an image to a product as multipart form data.
func (s *ProductsService) UploadImage(ctx context.Context, id, fileName string, r io.Reader) (*Product, error) {
	form, err := NewFileForm("image", fileName, r, nil)
	if err != nil {
		return nil, err
	}
	var p Product
	path := fmt.Sprintf("/products/%s/image", url.PathEscape(id))
	if err := s.client.Post(ctx, path, form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
