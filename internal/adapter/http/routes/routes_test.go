package routes

import (
	"bytes"
	"carwash/internal/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func newSeededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, Mode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:5000"}},
		Seed:   config.SeedConfig{Enabled: true},
	}
	deps, err := NewDependencies(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewDependencies: %v", err)
	}
	return NewRouter(cfg, deps)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	w := do(newSeededRouter(t), http.MethodGet, "/api/ping", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "message").String() != "pong" {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_SeededReads(t *testing.T) {
	r := newSeededRouter(t)

	w := do(r, http.MethodGet, "/api/Customer", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if n := gjson.Get(w.Body.String(), "#").Int(); n != 5 {
		t.Fatalf("expected 5 seeded customers, got %d", n)
	}

	w = do(r, http.MethodGet, "/api/CarWash/customer/123456789", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "0.id").String() != "CW001" {
		t.Fatalf("unexpected customer washes %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/CarWash/CW001", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "customer.id_number").String() != "123456789" {
		t.Fatalf("unexpected wash %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/Vehicle/search?searchTerm=toyota", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "#").Int() != 1 {
		t.Fatalf("unexpected vehicle search %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_CustomerLifecycle(t *testing.T) {
	r := newSeededRouter(t)

	body := `{"id_number":"111222333","full_name":"Sofía Mora","province":"Limón","canton":"Limón","district":"Limón","exact_address":"Frente al muelle","phone":"3333-3333","wash_preference":"Biweekly"}`
	w := do(r, http.MethodPost, "/api/Customer", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/api/Customer/111222333" {
		t.Fatalf("unexpected Location %q", loc)
	}

	w = do(r, http.MethodPost, "/api/Customer", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate, got %d", w.Code)
	}

	w = do(r, http.MethodDelete, "/api/Customer/111222333", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/Customer/111222333", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestRouter_Reports(t *testing.T) {
	r := newSeededRouter(t)

	w := do(r, http.MethodGet, "/api/Report/wash-statistics", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "total_car_washes").Int() != 1 {
		t.Fatalf("unexpected statistics %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/Report/customer-activity/000000000", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown customer, got %d", w.Code)
	}

	w = do(r, http.MethodPost, "/api/Report/contact-reminders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}
	attempted := gjson.Get(w.Body.String(), "attempted").Int()
	if sent := gjson.Get(w.Body.String(), "sent").Int(); sent != attempted {
		t.Fatalf("log notifier should deliver every reminder, got %s", w.Body.String())
	}
}

func TestRouter_VehicleOwnerIDIsTrimmedForReports(t *testing.T) {
	r := newSeededRouter(t)

	body := `{"license_plate":"XYZ789","brand":"Honda","model":"Civic","traction":"FWD","color":"Red","customer_id":" 987654321 "}`
	w := do(r, http.MethodPost, "/api/Vehicle", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	if got := gjson.Get(w.Body.String(), "customer_id").String(); got != "987654321" {
		t.Fatalf("expected trimmed customer id, got %q", got)
	}

	w = do(r, http.MethodGet, "/api/Report/customer-activity/987654321", "")
	if w.Code != http.StatusOK || gjson.Get(w.Body.String(), "total_vehicles").Int() != 1 {
		t.Fatalf("unexpected activity %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/Report/clients-to-contact", "")
	found := false
	gjson.Get(w.Body.String(), "clients.#.customer.id_number").ForEach(func(_, id gjson.Result) bool {
		found = found || id.String() == "987654321"
		return true
	})
	if !found {
		t.Fatalf("expected never-washed vehicle owner in contact report, got %s", w.Body.String())
	}
}
