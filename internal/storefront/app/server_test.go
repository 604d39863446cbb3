package app

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"
)

func TestServer_ProductsAndCartRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Addr:         "127.0.0.1:0",
		DBPath:       filepath.Join(dir, "storefront.db"),
		AdminKey:     "ADMIN2024FASHION",
		MediaDir:     filepath.Join(dir, "media"),
		ContactPhone: "919876543210",
		ContactEmail: "orders@mensfashion.com",
	}

	srv, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	base := "http://" + srv.Addr()

	resp, err := http.Get(base + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: status %d", resp.StatusCode)
	}

	resp, err = http.Get(base + "/api/v1/products")
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list products: status %d", resp.StatusCode)
	}
	var products []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty catalog, got %d products", len(products))
	}

	resp, err = http.Get(base + "/api/v1/cart")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	defer resp.Body.Close()
	var cartState struct {
		Items      []any   `json:"items"`
		TotalItems int     `json:"totalItems"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cartState); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cartState.TotalItems != 0 || len(cartState.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cartState)
	}
}

func TestNewRejectsBadAddr(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Addr:     "256.256.256.256:99999",
		DBPath:   filepath.Join(dir, "storefront.db"),
		MediaDir: filepath.Join(dir, "media"),
	}
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected error for bad listen address")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Addr:         "127.0.0.1:0",
		DBPath:       filepath.Join(dir, "storefront.db"),
		AdminKey:     "key",
		MediaDir:     filepath.Join(dir, "media"),
		ContactPhone: "919876543210",
		ContactEmail: "orders@mensfashion.com",
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for run to stop")
	}
}
