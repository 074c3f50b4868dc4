package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	t.Run("first_page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 1, PageSize: 20})

		if len(resp.Data) != 20 {
			t.Fatalf("expected 20 items, got %d", len(resp.Data))
		}
		if resp.Data[0] != 0 || resp.Data[19] != 19 {
			t.Errorf("expected items 0..19, got %d..%d", resp.Data[0], resp.Data[19])
		}
		if resp.TotalItems != 45 {
			t.Errorf("expected 45 total items, got %d", resp.TotalItems)
		}
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", resp.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 3, PageSize: 20})

		if len(resp.Data) != 5 {
			t.Fatalf("expected 5 items on the last page, got %d", len(resp.Data))
		}
		if resp.Data[0] != 40 {
			t.Errorf("expected page to start at item 40, got %d", resp.Data[0])
		}
	})

	t.Run("page_past_end", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 10, PageSize: 20})

		if len(resp.Data) != 0 {
			t.Errorf("expected empty page past the end, got %d items", len(resp.Data))
		}
		if resp.Data == nil {
			t.Error("expected empty slice, not nil")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		resp := Paginate(items, PageRequest{})

		if resp.Page != 1 || resp.PageSize != 20 {
			t.Errorf("expected defaults page=1 size=20, got page=%d size=%d", resp.Page, resp.PageSize)
		}
		if len(resp.Data) != 20 {
			t.Errorf("expected 20 items with defaults, got %d", len(resp.Data))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		resp := Paginate([]int{}, PageRequest{Page: 1, PageSize: 20})

		if len(resp.Data) != 0 || resp.TotalItems != 0 || resp.TotalPages != 0 {
			t.Errorf("expected empty response, got %+v", resp)
		}
	})
}
