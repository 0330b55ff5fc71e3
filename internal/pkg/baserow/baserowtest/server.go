// Package baserowtest runs an in-memory Baserow rows API for tests.
package baserowtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Row is a Baserow row keyed by user field name
type Row map[string]any

var rowsPath = regexp.MustCompile(`^/api/database/rows/table/([^/]+)/(?:(\d+)/)?$`)

// Server serves list, get, create, update and delete for any number of tables.
type Server struct {
	*httptest.Server

	Token string

	mu       sync.Mutex
	tables   map[string][]Row
	nextID   int
	requests int
	failWith int
}

// NewServer starts a server that accepts the given database token. It is
// closed when the test ends.
func NewServer(t testing.TB, token string) *Server {
	t.Helper()
	s := &Server{Token: token, tables: map[string][]Row{}, nextID: 1000}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// SetRows replaces the rows of a table. Rows without an "id" get one.
func (s *Server) SetRows(tableID string, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := Row{}
		for k, v := range r {
			row[k] = v
		}
		if _, ok := row["id"]; !ok {
			s.nextID++
			row["id"] = s.nextID
		}
		copied = append(copied, row)
	}
	s.tables[tableID] = copied
}

// Rows returns the current rows of a table
func (s *Server) Rows(tableID string) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Row(nil), s.tables[tableID]...)
}

// FailWith makes every following request return status. 0 disables.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Requests returns the number of requests served
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	if s.failWith != 0 {
		writeJSON(w, s.failWith, map[string]string{"error": "ERROR_FORCED"})
		return
	}
	if r.Header.Get("Authorization") != "Token "+s.Token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "ERROR_INVALID_TOKEN"})
		return
	}

	m := rowsPath.FindStringSubmatch(r.URL.Path)
	if m == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "URL_NOT_FOUND"})
		return
	}
	tableID := m[1]
	if _, ok := s.tables[tableID]; !ok && r.Method != http.MethodPost {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "ERROR_TABLE_DOES_NOT_EXIST"})
		return
	}

	if m[2] == "" {
		switch r.Method {
		case http.MethodGet:
			s.list(w, r, tableID)
		case http.MethodPost:
			s.create(w, r, tableID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	rowID, _ := strconv.Atoi(m[2])
	idx := s.indexOf(tableID, rowID)
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "ERROR_ROW_DOES_NOT_EXIST"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.tables[tableID][idx])
	case http.MethodPatch:
		var patch Row
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		for k, v := range patch {
			if k != "id" {
				s.tables[tableID][idx][k] = v
			}
		}
		writeJSON(w, http.StatusOK, s.tables[tableID][idx])
	case http.MethodDelete:
		s.tables[tableID] = append(s.tables[tableID][:idx], s.tables[tableID][idx+1:]...)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) indexOf(tableID string, rowID int) int {
	for i, row := range s.tables[tableID] {
		if fmt.Sprint(row["id"]) == strconv.Itoa(rowID) {
			return i
		}
	}
	return -1
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, tableID string) {
	var row Row
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.nextID++
	row["id"] = s.nextID
	s.tables[tableID] = append(s.tables[tableID], row)
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, tableID string) {
	q := r.URL.Query()

	var rows []Row
	for _, row := range s.tables[tableID] {
		if matches(row, q) {
			rows = append(rows, row)
		}
	}

	if field := q.Get("order_by"); field != "" {
		desc := strings.HasPrefix(field, "-")
		field = strings.TrimLeft(field, "+-")
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := fmt.Sprint(rows[i][field]), fmt.Sprint(rows[j][field])
			ai, aerr := strconv.ParseFloat(a, 64)
			bi, berr := strconv.ParseFloat(b, 64)
			less := a < b
			if aerr == nil && berr == nil {
				less = ai < bi
			}
			if desc {
				return !less
			}
			return less
		})
	}

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("size"))
	if size < 1 {
		size = 100
	}

	start := min((page-1)*size, len(rows))
	end := min(start+size, len(rows))

	var next *string
	if end < len(rows) {
		n := fmt.Sprintf("%s%s?page=%d", s.URL, r.URL.Path, page+1)
		next = &n
	}

	results := rows[start:end]
	if results == nil {
		results = []Row{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(rows),
		"next":     next,
		"previous": nil,
		"results":  results,
	})
}

// matches applies filter__<field>__equal parameters
func matches(row Row, q map[string][]string) bool {
	for key, values := range q {
		if !strings.HasPrefix(key, "filter__") || !strings.HasSuffix(key, "__equal") {
			continue
		}
		field := strings.TrimSuffix(strings.TrimPrefix(key, "filter__"), "__equal")
		if fmt.Sprint(row[field]) != values[0] {
			return false
		}
	}
	return true
}
