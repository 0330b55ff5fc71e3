package baserow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID       int      `json:"id"`
	Orderr   string   `json:"orderr"`
	Category *string  `json:"category"`
	Count    IntField `json:"count"`
}

// newTestClient starts a test server and returns a Client pointing at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "db-token", srv.Client(), opts...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ---------------------------------------------------------------------------
// NewClient
// ---------------------------------------------------------------------------

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "tok", nil)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.NotNil(t, c.httpClient)

	c = NewClient("http://baserow.local///", "tok", nil)
	assert.Equal(t, "http://baserow.local", c.BaseURL())
}

// ---------------------------------------------------------------------------
// ListRows
// ---------------------------------------------------------------------------

func TestListRows_RequestShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/database/rows/table/804407/", r.URL.Path)
		assert.Equal(t, "Token db-token", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("user_field_names"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("size"))
		assert.Equal(t, "fractions", q.Get("search"))
		assert.Equal(t, "orderr", q.Get("order_by"))
		assert.Equal(t, "Math", q.Get("filter__category__equal"))

		writeJSON(t, w, map[string]any{
			"count":    1,
			"next":     nil,
			"previous": nil,
			"results":  []map[string]any{{"id": 7, "orderr": "3", "category": "Math", "count": "4.00"}},
		})
	})

	page, err := ListRows[testRow](context.Background(), c, "804407", ListOptions{
		Page:    2,
		Size:    50,
		Search:  "fractions",
		OrderBy: "orderr",
		Filters: map[string]string{"filter__category__equal": "Math"},
	})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 7, page.Results[0].ID)
	assert.Equal(t, "Math", *page.Results[0].Category)
	assert.Equal(t, NewIntField(4), page.Results[0].Count)
	assert.Nil(t, page.Next)
}

func TestListRows_OmitsZeroOptions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("user_field_names"))
		assert.False(t, q.Has("page"))
		assert.False(t, q.Has("size"))
		assert.False(t, q.Has("search"))
		assert.False(t, q.Has("order_by"))
		writeJSON(t, w, map[string]any{"count": 0, "next": nil, "results": []any{}})
	})

	_, err := ListRows[testRow](context.Background(), c, "1", ListOptions{})
	require.NoError(t, err)
}

func TestListRows_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"ERROR_INVALID_TOKEN"}`)
	})

	_, err := ListRows[testRow](context.Background(), c, "1", ListOptions{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "ERROR_INVALID_TOKEN")
	assert.Contains(t, err.Error(), "401")
	assert.False(t, IsNotFound(err))
}

// ---------------------------------------------------------------------------
// GetAllRows
// ---------------------------------------------------------------------------

func TestGetAllRows_FollowsPagination(t *testing.T) {
	var (
		mu    sync.Mutex
		pages []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mu.Lock()
		pages = append(pages, q.Get("page"))
		mu.Unlock()
		assert.Equal(t, "200", q.Get("size"))
		assert.Equal(t, "orderr", q.Get("order_by"))

		switch q.Get("page") {
		case "1":
			next := "http://example/next"
			writeJSON(t, w, ListResponse[testRow]{Count: 3, Next: &next, Results: []testRow{{ID: 1}, {ID: 2}}})
		case "2":
			writeJSON(t, w, ListResponse[testRow]{Count: 3, Results: []testRow{{ID: 3}}})
		default:
			t.Errorf("unexpected page %q", q.Get("page"))
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	rows, err := GetAllRows[testRow](context.Background(), c, "5", ListOptions{OrderBy: "orderr", Page: 9, Size: 3})
	require.NoError(t, err)

	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestGetAllRows_EmptyTable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"count": 0, "next": nil, "results": []any{}})
	})

	rows, err := GetAllRows[testRow](context.Background(), c, "5", ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGetAllRows_StopsOnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		next := "more"
		writeJSON(t, w, ListResponse[testRow]{Next: &next, Results: []testRow{{ID: 1}}})
	})

	rows, err := GetAllRows[testRow](context.Background(), c, "5", ListOptions{})
	assert.Nil(t, rows)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Single row operations
// ---------------------------------------------------------------------------

func TestGetRow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/database/rows/table/804406/3/":
			writeJSON(t, w, map[string]any{"id": 3, "orderr": "1", "count": 5})
		default:
			http.Error(w, `{"error":"ERROR_ROW_DOES_NOT_EXIST"}`, http.StatusNotFound)
		}
	})

	row, err := GetRow[testRow](context.Background(), c, "804406", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, row.ID)
	assert.Equal(t, 5, row.Count.Value)

	_, err = GetRow[testRow](context.Background(), c, "804406", 99)
	assert.True(t, IsNotFound(err))
}

func TestCreateUpdateDeleteRow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/database/rows/table/10/", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Math", body["category"])
			writeJSON(t, w, map[string]any{"id": 42, "category": body["category"]})
		case http.MethodPatch:
			assert.Equal(t, "/api/database/rows/table/10/42/", r.URL.Path)
			writeJSON(t, w, map[string]any{"id": 42, "orderr": "2"})
		case http.MethodDelete:
			assert.Equal(t, "/api/database/rows/table/10/42/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
	ctx := context.Background()

	created, err := CreateRow[testRow](ctx, c, "10", map[string]any{"category": "Math"})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)

	updated, err := UpdateRow[testRow](ctx, c, "10", 42, map[string]any{"orderr": "2"})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.Orderr)

	require.NoError(t, DeleteRow(ctx, c, "10", 42))
}

// ---------------------------------------------------------------------------
// Observer and Factory
// ---------------------------------------------------------------------------

func TestObserverAndFactory(t *testing.T) {
	type call struct {
		op     string
		status int
	}
	var calls []call

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token course-token", r.Header.Get("Authorization"))
		writeJSON(t, w, map[string]any{"count": 0, "next": nil, "results": []any{}})
	}))
	t.Cleanup(srv.Close)

	f := NewFactory(srv.URL, srv.Client(), WithObserver(func(op string, status int, elapsed time.Duration) {
		calls = append(calls, call{op, status})
	}))

	_, err := ListRows[testRow](context.Background(), f.ForToken("course-token"), "1", ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []call{{"list_rows", http.StatusOK}}, calls)
}

func TestContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ListRows[testRow](ctx, c, "1", ListOptions{})
	assert.Error(t, err)
	assert.False(t, IsNotFound(err))
}

// ---------------------------------------------------------------------------
// IntField
// ---------------------------------------------------------------------------

func TestIntField_Unmarshal(t *testing.T) {
	tests := []struct {
		in    string
		want  IntField
		isErr bool
	}{
		{`null`, IntField{}, false},
		{`5`, NewIntField(5), false},
		{`5.0`, NewIntField(5), false},
		{`"12"`, NewIntField(12), false},
		{`"7.50"`, NewIntField(7), false},
		{`""`, IntField{}, false},
		{`"n/a"`, IntField{}, false},
		{`true`, IntField{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f IntField
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.isErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestIntField_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A IntField `json:"a"`
		B IntField `json:"b"`
	}{A: NewIntField(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))

	assert.Nil(t, IntField{}.Ptr())
	assert.Equal(t, 3, *NewIntField(3).Ptr())
}

func TestLeadingInt(t *testing.T) {
	for in, want := range map[string]int{"10": 10, " 3 ": 3, "-2": -2, "12abc": 12, "4.9": 4} {
		got, ok := LeadingInt(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, fmt.Sprintf("LeadingInt(%q)", in))
	}
	for _, in := range []string{"", "abc", "-", ".5"} {
		_, ok := LeadingInt(in)
		assert.False(t, ok, in)
	}
}
