package internal

import (
	"context"
	"strings"
	"testing"

	"github.com/openretail/backoffice/testutil"
)

func TestProductsService_ListEnvelope(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/products", 200, map[string]any{
		"items": testutil.SampleProducts,
		"total": 17,
	})

	client := newTestClient(t, backend)
	page, err := client.Products().List(context.Background(), ProductFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(page.Items))
	}
	if page.Total != 17 {
		t.Errorf("Total = %d, want 17", page.Total)
	}
	if page.Items[0].SKU != "TEA-001" {
		t.Errorf("Items[0].SKU = %q", page.Items[0].SKU)
	}
}

func TestProductsService_ListBareArray(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/products", 200, testutil.SampleProducts)

	client := newTestClient(t, backend)
	page, err := client.Products().List(context.Background(), ProductFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Items) != 2 || page.Total != 2 {
		t.Errorf("page = %d items, total %d; want 2/2", len(page.Items), page.Total)
	}
}

func TestProductsService_ListQuery(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/products", 200, []any{})

	client := newTestClient(t, backend)
	_, err := client.Products().List(context.Background(), ProductFilter{
		Category: "tea",
		Limit:    10,
		Offset:   20,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	q := backend.LastRequest().Query
	for _, want := range []string{"category=tea", "limit=10", "offset=20"} {
		if !strings.Contains(q, want) {
			t.Errorf("query = %q, want %s", q, want)
		}
	}
}

func TestProductsService_Get(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/products/p1", 200, testutil.SampleProducts[0])

	client := newTestClient(t, backend)
	p, err := client.Products().Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Name != "Green Tea" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestProductsService_CreateUpdateDelete(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("POST", "/products", 201, map[string]string{"id": "p9", "sku": "NEW-1", "name": "Oolong"})
	backend.Handle("PUT", "/products/p9", 200, map[string]string{"id": "p9", "sku": "NEW-1", "name": "Oolong Reserve"})
	backend.Handle("DELETE", "/products/p9", 204, nil)

	client := newTestClient(t, backend)
	ctx := context.Background()

	created, err := client.Products().Create(ctx, &Product{SKU: "NEW-1", Name: "Oolong"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != "p9" {
		t.Errorf("Create() ID = %q", created.ID)
	}

	updated, err := client.Products().Update(ctx, "p9", created)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Oolong Reserve" {
		t.Errorf("Update() Name = %q", updated.Name)
	}

	if err := client.Products().Delete(ctx, "p9"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n := backend.RequestCount("DELETE", "/products/p9"); n != 1 {
		t.Errorf("DELETE calls = %d, want 1", n)
	}
}

func TestProductsService_ImportCSV(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("POST", "/products/import", 200, map[string]any{
		"imported": 3, "skipped": 1, "errors": []string{"row 4: missing sku"},
	})

	client := newTestClient(t, backend)
	result, err := client.Products().ImportCSV(context.Background(), "catalog.csv",
		strings.NewReader("sku,name\nA,Tea\n"))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if result.Imported != 3 || result.Skipped != 1 {
		t.Errorf("result = %+v", result)
	}

	req := backend.LastRequest()
	if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
		t.Errorf("Content-Type = %q, want multipart", req.Header.Get("Content-Type"))
	}
	if !strings.Contains(string(req.Body), "catalog.csv") {
		t.Error("request body should carry the file name")
	}
}

func TestProductsService_LowStock(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/products/low-stock", 200, []any{testutil.SampleProducts[1]})

	client := newTestClient(t, backend)
	page, err := client.Products().LowStock(context.Background())
	if err != nil {
		t.Fatalf("LowStock() error = %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].SKU != "TEA-002" {
		t.Errorf("LowStock() = %+v", page.Items)
	}
}
