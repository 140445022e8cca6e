package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tankar/quote_backend/internal/app/config"
	"tankar/quote_backend/internal/infra/logger"
	"tankar/quote_backend/internal/infra/sessions"

	pdfgen "tankar/quote_backend/internal/domain/quote/pdf/gofpdf"
)

func newTestRouter(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	return NewRouter(cfg, sessions.New(), pdfgen.New("", 40), logger.New("dev"))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/v1/sessions", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp["id"]
}

func itemCount(t *testing.T, h http.Handler, id string) int {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/v1/sessions/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get session: status %d", rec.Code)
	}
	var view struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return len(view.Items)
}

func TestQuoteFlow(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	id := createSession(t, h)

	// export is gated until there is at least one item
	if rec := do(t, h, http.MethodGet, "/v1/sessions/"+id+"/export/text", nil); rec.Code != http.StatusConflict {
		t.Fatalf("export without items: status %d, want 409", rec.Code)
	}

	rec := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items", map[string]any{
		"category": "consulting",
		"summary":  "suporte de rede",
		"hours":    4,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add item: status %d, body %s", rec.Code, rec.Body)
	}

	// still gated: header names missing
	if rec := do(t, h, http.MethodGet, "/v1/sessions/"+id+"/export/text", nil); rec.Code != http.StatusConflict {
		t.Fatalf("export without header: status %d, want 409", rec.Code)
	}

	rec = do(t, h, http.MethodPut, "/v1/sessions/"+id+"/header", map[string]any{
		"client_name":     "ACME Ltda",
		"consultant_name": "Maria Silva",
		"validity_days":   10,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("set header: status %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodPut, "/v1/sessions/"+id+"/adjustments", map[string]any{
		"expenses":       200,
		"tax_percent":    10,
		"margin_percent": 5,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("set adjustments: status %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodGet, "/v1/sessions/"+id+"/export/text", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export text: status %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "quote_TANKAR_") {
		t.Errorf("content disposition = %q", cd)
	}
	body := rec.Body.String()
	for _, want := range []string{"TANKAR IT QUOTE TOOL", "Cliente: ACME Ltda", "Item 1:", "TOTAL GERAL: R$ 1.155,00"} {
		if !strings.Contains(body, want) {
			t.Errorf("text export missing %q", want)
		}
	}

	rec = do(t, h, http.MethodGet, "/v1/sessions/"+id+"/export/pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export pdf: status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("pdf export does not start with %PDF")
	}
}

func TestItemOperations(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	id := createSession(t, h)

	add := func(summary string) {
		t.Helper()
		rec := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items", map[string]any{
			"category": "consulting",
			"summary":  summary,
			"hours":    1,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("add item: status %d, body %s", rec.Code, rec.Body)
		}
	}

	add("primeiro")
	add("segundo")

	// duplicate appends to the end
	if rec := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items/0/duplicate", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("duplicate: status %d", rec.Code)
	}
	if n := itemCount(t, h, id); n != 3 {
		t.Fatalf("items = %d, want 3", n)
	}

	// stale indexes are silent no-ops
	if rec := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items/99/duplicate", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("stale duplicate: status %d", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, "/v1/sessions/"+id+"/items/99", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("stale delete: status %d", rec.Code)
	}
	if n := itemCount(t, h, id); n != 3 {
		t.Fatalf("items after stale ops = %d, want 3", n)
	}

	if rec := do(t, h, http.MethodDelete, "/v1/sessions/"+id+"/items/2", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
	if n := itemCount(t, h, id); n != 2 {
		t.Fatalf("items after delete = %d, want 2", n)
	}

	if rec := do(t, h, http.MethodDelete, "/v1/sessions/"+id+"/items", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("clear: status %d", rec.Code)
	}
	if n := itemCount(t, h, id); n != 0 {
		t.Fatalf("items after clear = %d, want 0", n)
	}
}

func TestValidationFailuresPreserveState(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	id := createSession(t, h)

	rec := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items", map[string]any{
		"category": "consulting",
		"summary":  "",
		"hours":    4,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid item: status %d, want 422", rec.Code)
	}
	if n := itemCount(t, h, id); n != 0 {
		t.Errorf("invalid item was stored: items = %d", n)
	}

	rec = do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items", map[string]any{
		"category": "something_else",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown category: status %d, want 422", rec.Code)
	}

	rec = do(t, h, http.MethodPut, "/v1/sessions/"+id+"/adjustments", map[string]any{
		"expenses": -1,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("negative expenses: status %d, want 422", rec.Code)
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	id := createSession(t, h)

	rec := do(t, h, http.MethodPost, "/v1/sessions/"+id+"/items/preview", map[string]any{
		"category":  "wireless_survey",
		"summary":   "survey completo",
		"floors":    10,
		"area_band": "200–300 m²",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("preview: status %d, body %s", rec.Code, rec.Body)
	}
	var item struct {
		Subtotal string `json:"subtotal"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.Subtotal != "48000" {
		t.Errorf("preview subtotal = %s, want 48000", item.Subtotal)
	}
	if n := itemCount(t, h, id); n != 0 {
		t.Errorf("preview stored an item: items = %d", n)
	}
}

func TestUnknownSession(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	if rec := do(t, h, http.MethodGet, "/v1/sessions/nope", nil); rec.Code != http.StatusNotFound {
		t.Errorf("get: status %d, want 404", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/v1/sessions/nope/items", map[string]any{
		"category": "equipment_sale",
	}); rec.Code != http.StatusNotFound {
		t.Errorf("add item: status %d, want 404", rec.Code)
	}
}

func TestSessionDiscard(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	id := createSession(t, h)

	if rec := do(t, h, http.MethodDelete, "/v1/sessions/"+id, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete session: status %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/v1/sessions/"+id, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", rec.Code)
	}
}

func TestCatalog(t *testing.T) {
	h := newTestRouter(t, config.Config{})
	rec := do(t, h, http.MethodGet, "/v1/catalog", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("catalog: status %d", rec.Code)
	}
	var resp struct {
		Categories []string `json:"categories"`
		AreaBands  []string `json:"area_bands"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Categories) != 7 {
		t.Errorf("categories = %d, want 7", len(resp.Categories))
	}
	if len(resp.AreaBands) != 4 {
		t.Errorf("area bands = %d, want 4", len(resp.AreaBands))
	}
}

func TestInternalAuth(t *testing.T) {
	h := newTestRouter(t, config.Config{InternalToken: "secret"})

	if rec := do(t, h, http.MethodPost, "/v1/sessions", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("without token: status %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
	req.Header.Set("X-Internal-Token", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Errorf("with token: status %d, want 201", rec.Code)
	}

	// health stays open
	if rec := do(t, h, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Errorf("health: status %d, want 200", rec.Code)
	}
}
