package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"bitefinder/internal/cart"
	"bitefinder/internal/domain"
)

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode cart response: %v body=%s", err, body)
	}
	return resp
}

func TestCartFlow(t *testing.T) {
	identity := &stubIdentitySvc{session: userSession()}
	restaurant := &stubRestaurantSvc{
		single: &domain.Restaurant{ID: "r1", Name: "Spice Garden", CostForTwo: 500},
	}
	store := cart.NewMemory()
	router := newTestRouter(routerOpts{identity: identity, restaurant: restaurant, carts: store})

	// Empty cart: zero totals, items is an array.
	rec := doJSON(t, router, http.MethodGet, "/cart", "", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Items) != 0 || resp.Totals.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", resp)
	}

	// Add the same restaurant twice: one line, quantity 2.
	for i := 0; i < 2; i++ {
		rec = doJSON(t, router, http.MethodPost, "/cart/items", `{"restaurantId":"r1"}`, "tok")
		if rec.Code != http.StatusOK {
			t.Fatalf("add item %d: expected 200, got %d body=%s", i, rec.Code, rec.Body.String())
		}
	}
	resp = decodeCart(t, rec.Body.Bytes())
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 2 {
		t.Fatalf("expected single line qty 2, got %+v", resp.Items)
	}
	// 1000 subtotal + 40 fee + 50 tax.
	if resp.Totals.Total != 1090 {
		t.Fatalf("expected total 1090, got %+v", resp.Totals)
	}

	// Set quantity.
	rec = doJSON(t, router, http.MethodPatch, "/cart/items/r1", `{"quantity":3}`, "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	resp = decodeCart(t, rec.Body.Bytes())
	if resp.Items[0].Quantity != 3 {
		t.Fatalf("expected qty 3, got %+v", resp.Items)
	}

	// Quantity below one is ignored.
	rec = doJSON(t, router, http.MethodPatch, "/cart/items/r1", `{"quantity":0}`, "tok")
	resp = decodeCart(t, rec.Body.Bytes())
	if resp.Items[0].Quantity != 3 {
		t.Fatalf("qty<1 must be a no-op, got %+v", resp.Items)
	}

	// Remove the line.
	rec = doJSON(t, router, http.MethodDelete, "/cart/items/r1", "", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	resp = decodeCart(t, rec.Body.Bytes())
	if len(resp.Items) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", resp.Items)
	}
}

func TestAddCartItem_UnknownRestaurant(t *testing.T) {
	identity := &stubIdentitySvc{session: userSession()}
	restaurant := &stubRestaurantSvc{getErr: domain.ErrNotFound}
	router := newTestRouter(routerOpts{identity: identity, restaurant: restaurant})

	rec := doJSON(t, router, http.MethodPost, "/cart/items", `{"restaurantId":"nope"}`, "tok")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestClearCartHandler(t *testing.T) {
	identity := &stubIdentitySvc{session: userSession()}
	restaurant := &stubRestaurantSvc{
		single: &domain.Restaurant{ID: "r1", Name: "Spice Garden", CostForTwo: 500},
	}
	store := cart.NewMemory()
	router := newTestRouter(routerOpts{identity: identity, restaurant: restaurant, carts: store})

	doJSON(t, router, http.MethodPost, "/cart/items", `{"restaurantId":"r1"}`, "tok")

	rec := doJSON(t, router, http.MethodDelete, "/cart", "", "tok")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/cart", "", "tok")
	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", resp.Items)
	}
}

func TestCartRequiresSession(t *testing.T) {
	router := newTestRouter(routerOpts{})

	rec := doJSON(t, router, http.MethodGet, "/cart", "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}
