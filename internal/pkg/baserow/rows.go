package baserow

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// MaxPageSize is the largest page Baserow serves.
const MaxPageSize = 200

// ListOptions narrows a list request. Zero values are omitted.
type ListOptions struct {
	Page    int
	Size    int
	Search  string
	OrderBy string
	// Filters are passed through verbatim, e.g. "filter__category__equal".
	Filters map[string]string
}

// ListResponse is one page of rows.
type ListResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (o ListOptions) query() url.Values {
	params := url.Values{}
	params.Set("user_field_names", "true")
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.Size > 0 {
		params.Set("size", strconv.Itoa(o.Size))
	}
	if o.Search != "" {
		params.Set("search", o.Search)
	}
	if o.OrderBy != "" {
		params.Set("order_by", o.OrderBy)
	}
	for k, v := range o.Filters {
		params.Set(k, v)
	}
	return params
}

func tablePath(tableID string) string {
	return fmt.Sprintf("/api/database/rows/table/%s/", url.PathEscape(tableID))
}

func rowPath(tableID string, rowID int) string {
	return fmt.Sprintf("/api/database/rows/table/%s/%d/", url.PathEscape(tableID), rowID)
}

// ListRows fetches a single page of rows.
func ListRows[T any](ctx context.Context, c *Client, tableID string, opts ListOptions) (*ListResponse[T], error) {
	endpoint := tablePath(tableID) + "?" + opts.query().Encode()

	var page ListResponse[T]
	if err := c.do(ctx, "list_rows", http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAllRows walks every page of MaxPageSize rows until next is null.
// opts.Page and opts.Size are ignored.
func GetAllRows[T any](ctx context.Context, c *Client, tableID string, opts ListOptions) ([]T, error) {
	var rows []T
	opts.Size = MaxPageSize
	for page := 1; ; page++ {
		opts.Page = page
		resp, err := ListRows[T](ctx, c, tableID, opts)
		if err != nil {
			return nil, err
		}
		rows = append(rows, resp.Results...)
		if resp.Next == nil {
			break
		}
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// GetRow fetches one row by id.
func GetRow[T any](ctx context.Context, c *Client, tableID string, rowID int) (*T, error) {
	var row T
	endpoint := rowPath(tableID, rowID) + "?user_field_names=true"
	if err := c.do(ctx, "get_row", http.MethodGet, endpoint, nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateRow inserts a row. data is any JSON-encodable value keyed by field name.
func CreateRow[T any](ctx context.Context, c *Client, tableID string, data any) (*T, error) {
	var row T
	endpoint := tablePath(tableID) + "?user_field_names=true"
	if err := c.do(ctx, "create_row", http.MethodPost, endpoint, data, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateRow patches the given fields of a row.
func UpdateRow[T any](ctx context.Context, c *Client, tableID string, rowID int, data any) (*T, error) {
	var row T
	endpoint := rowPath(tableID, rowID) + "?user_field_names=true"
	if err := c.do(ctx, "update_row", http.MethodPatch, endpoint, data, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteRow removes a row.
func DeleteRow(ctx context.Context, c *Client, tableID string, rowID int) error {
	return c.do(ctx, "delete_row", http.MethodDelete, rowPath(tableID, rowID), nil, nil)
}
