package pagination_test

import (
	"net/url"
	"testing"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/pagination"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values", page: 0, pageSize: 0, wantPage: 1, wantPageSize: 20},
		{name: "negative page", page: -3, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "over max", page: 2, pageSize: 500, wantPage: 2, wantPageSize: 100},
		{name: "valid", page: 4, pageSize: 50, wantPage: 4, wantPageSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig())

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 20}
	if got := req.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")
	values.Set("search", "benchy")
	values.Set("sort", "-created_at,material")

	req := pagination.PageRequestFromQuery(values, testConfig())

	if req.Page != 2 || req.PageSize != 10 {
		t.Errorf("page/size = %d/%d, want 2/10", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "benchy" {
		t.Errorf("Search = %v, want benchy", req.Search)
	}
	if len(req.Sort) != 2 || !req.Sort[0].Descending || req.Sort[0].Field != "created_at" {
		t.Errorf("Sort = %v", req.Sort)
	}
}

func TestPageRequestFromQuery_Empty(t *testing.T) {
	req := pagination.PageRequestFromQuery(url.Values{}, testConfig())

	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("page/size = %d/%d, want normalized defaults", req.Page, req.PageSize)
	}
	if req.Search != nil {
		t.Errorf("Search = %v, want nil", req.Search)
	}
}

func TestNewPageResult(t *testing.T) {
	result := pagination.NewPageResult([]string{"a", "b"}, 45, 2, 20)

	if result.Total != 45 {
		t.Errorf("Total = %d, want 45", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}
	if len(result.Data) != 2 {
		t.Errorf("Data = %v", result.Data)
	}
}

func TestNewPageResult_Empty(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)

	if result.Data == nil {
		t.Error("Data = nil, want empty slice")
	}
	if result.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", result.TotalPages)
	}
}

func TestConfig_Finalize(t *testing.T) {
	cfg := pagination.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}
