package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/broker"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/config"
	"go.uber.org/zap"
)

type apiClient struct {
	t      *testing.T
	client *http.Client
	base   string
}

func (c apiClient) call(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		c.t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

type productResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Image        []string `json:"image"`
	Price        *float64 `json:"price"`
	CollectionID int64    `json:"collectionId"`
	IsAvailable  bool     `json:"isAvailable"`
	Dimensions   *struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Depth  float64 `json:"depth"`
	} `json:"dimensions"`
	Collection *struct {
		Name string `json:"name"`
	} `json:"collection"`
}

func TestIntegration(t *testing.T) {
	// 1. Setup DB
	store, err := sqlstore.Open(context.Background(), "file:e2e?mode=memory&cache=shared", sqlstore.Options{})
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	defer store.Close()

	// 2. Setup Router
	server := httptest.NewServer(newHandler(&config.Config{}, zap.NewNop(), store, broker.NopPublisher{}))
	defer server.Close()

	api := apiClient{t: t, client: server.Client(), base: server.URL}

	// TEST 1: Create Collection
	var collection struct {
		ID       int64             `json:"id"`
		Name     string            `json:"name"`
		Images   []string          `json:"images"`
		Products []json.RawMessage `json:"products"`
	}
	status := api.call("POST", "/api/collections", map[string]interface{}{
		"name":        "Living Room",
		"description": "Sofas and lamps",
		"images":      []string{"living-room.jpg"},
	}, &collection)
	if status != http.StatusCreated {
		t.Fatalf("Create collection expected 201, got %d", status)
	}
	if collection.ID == 0 || collection.Name != "Living Room" || len(collection.Images) != 1 {
		t.Errorf("Unexpected collection: %+v", collection)
	}
	if collection.Products == nil {
		t.Error("products should be an empty list, not null")
	}

	// TEST 2: Create Products
	var sofa productResponse
	status = api.call("POST", "/api/products", map[string]interface{}{
		"title":        "Sofa",
		"image":        []string{"https://cdn.example.com/sofa.jpg"},
		"dimensions":   map[string]float64{"width": 200, "height": 90, "depth": 95},
		"price":        1299.99,
		"collectionId": collection.ID,
	}, &sofa)
	if status != http.StatusCreated {
		t.Fatalf("Create product expected 201, got %d", status)
	}
	if !sofa.IsAvailable || sofa.Collection == nil || sofa.Collection.Name != "Living Room" {
		t.Errorf("Unexpected product: %+v", sofa)
	}

	var lamp productResponse
	status = api.call("POST", "/api/products", map[string]interface{}{
		"title":        "Floor Lamp",
		"price":        "50",
		"collectionId": fmt.Sprint(collection.ID),
		"isAvailable":  false,
	}, &lamp)
	if status != http.StatusCreated {
		t.Fatalf("Create lamp expected 201, got %d", status)
	}
	if lamp.IsAvailable || lamp.Image == nil || len(lamp.Image) != 0 {
		t.Errorf("Unexpected lamp: %+v", lamp)
	}

	var invalid map[string]string
	status = api.call("POST", "/api/products", map[string]interface{}{
		"title":        "Broken",
		"image":        []string{"not a url"},
		"collectionId": collection.ID,
	}, &invalid)
	if status != http.StatusBadRequest || invalid["message"] != "Failed to create product" {
		t.Errorf("Invalid image expected 400, got %d %v", status, invalid)
	}

	// TEST 3: Get Product
	var fetched productResponse
	if status := api.call("GET", fmt.Sprintf("/api/products/%d", sofa.ID), nil, &fetched); status != http.StatusOK {
		t.Fatalf("Get product expected 200, got %d", status)
	}
	if fetched.Dimensions == nil || fetched.Dimensions.Width != 200 || fetched.Dimensions.Depth != 95 {
		t.Errorf("Dimensions lost: %+v", fetched.Dimensions)
	}
	if fetched.Price == nil || *fetched.Price != 1299.99 {
		t.Errorf("Price lost: %v", fetched.Price)
	}

	// TEST 4: Stats
	var stats struct {
		Stats struct {
			TotalProducts int     `json:"totalProducts"`
			TotalValue    float64 `json:"totalValue"`
		} `json:"stats"`
	}
	if status := api.call("GET", fmt.Sprintf("/api/collections/%d/stats", collection.ID), nil, &stats); status != http.StatusOK {
		t.Fatalf("Stats expected 200, got %d", status)
	}
	if stats.Stats.TotalProducts != 2 || stats.Stats.TotalValue != 1349.99 {
		t.Errorf("Unexpected stats: %+v", stats.Stats)
	}

	// TEST 5: Search
	var found []productResponse
	api.call("GET", "/api/products/search?title=SOF&minPrice=1000", nil, &found)
	if len(found) != 1 || found[0].ID != sofa.ID {
		t.Errorf("Search expected the sofa, got %+v", found)
	}

	var page struct {
		Data       []productResponse `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			HasNext    bool  `json:"hasNext"`
		} `json:"pagination"`
	}
	api.call("GET", "/api/products/search-paged?page=1&limit=1", nil, &page)
	if len(page.Data) != 1 || page.Pagination.Total != 2 || page.Pagination.TotalPages != 2 || !page.Pagination.HasNext {
		t.Errorf("Unexpected page: %+v", page)
	}

	// TEST 6: Toggle Availability
	var toggled productResponse
	api.call("POST", fmt.Sprintf("/api/products/%d/toggle-availability", lamp.ID), nil, &toggled)
	if !toggled.IsAvailable {
		t.Error("Toggle should make the lamp available")
	}

	// TEST 7: Delete Collection cascades to products
	if status := api.call("DELETE", fmt.Sprintf("/api/collections/%d", collection.ID), nil, nil); status != http.StatusOK {
		t.Fatalf("Delete collection expected 200, got %d", status)
	}
	if status := api.call("GET", fmt.Sprintf("/api/products/%d", sofa.ID), nil, nil); status != http.StatusNotFound {
		t.Errorf("Product should be gone, got %d", status)
	}
	if status := api.call("DELETE", fmt.Sprintf("/api/collections/%d", collection.ID), nil, nil); status != http.StatusNotFound {
		t.Errorf("Second delete expected 404, got %d", status)
	}
}
