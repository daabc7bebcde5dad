package services

import (
	"errors"
	"fmt"
	"testing"

	"hotel-search-service/internal/domain"
)

func rankedFixture(t *testing.T, n int) []RankedHotel {
	t.Helper()
	ranked := make([]RankedHotel, 0, n)
	for i := 0; i < n; i++ {
		h, err := domain.NewHotel(fmt.Sprintf("Hotel %02d", i), 100+float64(i), 45, 15)
		if err != nil {
			t.Fatalf("fixture: %v", err)
		}
		ranked = append(ranked, RankedHotel{Hotel: h, DistanceKm: float64(i)})
	}
	return ranked
}

func TestPaginateSplitsPages(t *testing.T) {
	ranked := rankedFixture(t, 25)

	cases := []struct {
		page      int
		wantItems int
	}{
		{1, 10},
		{2, 10},
		{3, 5},
	}

	for _, tc := range cases {
		page, err := Paginate(ranked, tc.page, 10)
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", tc.page, err)
		}
		if len(page.Items) != tc.wantItems {
			t.Fatalf("page %d: %d items, want %d", tc.page, len(page.Items), tc.wantItems)
		}
		if page.TotalCount != 25 {
			t.Fatalf("page %d: total_count = %d, want 25", tc.page, page.TotalCount)
		}
		if page.TotalPages != 3 {
			t.Fatalf("page %d: total_pages = %d, want 3", tc.page, page.TotalPages)
		}
	}

	// First item of page 2 is the 11th ranked entry.
	page2, err := Paginate(ranked, 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page2.Items[0].Name != "Hotel 10" {
		t.Fatalf("page 2 starts with %q, want Hotel 10", page2.Items[0].Name)
	}
}

func TestPaginatePastTheEnd(t *testing.T) {
	ranked := rankedFixture(t, 5)

	page, err := Paginate(ranked, 7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page.Items))
	}
	if page.TotalCount != 5 || page.TotalPages != 1 {
		t.Fatalf("totals wrong: count=%d pages=%d", page.TotalCount, page.TotalPages)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	page, err := Paginate(nil, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 0 || page.TotalPages != 0 || len(page.Items) != 0 {
		t.Fatalf("empty input must yield a well-formed empty page: %+v", page)
	}
}

func TestPaginateValidatesWindow(t *testing.T) {
	ranked := rankedFixture(t, 3)

	cases := []struct {
		name           string
		page, pageSize int
	}{
		{"page zero", 0, 10},
		{"negative page", -1, 10},
		{"page size zero", 1, 0},
		{"page size too large", 1, 101},
	}

	for _, tc := range cases {
		if _, err := Paginate(ranked, tc.page, tc.pageSize); !errors.Is(err, domain.ErrOutOfRange) {
			t.Fatalf("%s: error = %v, want ErrOutOfRange", tc.name, err)
		}
	}
}

func TestPaginateRoundsDistanceForPresentation(t *testing.T) {
	h, err := domain.NewHotel("Hotel", 100, 45, 15)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	ranked := []RankedHotel{{Hotel: h, DistanceKm: 12.34567}}

	page, err := Paginate(ranked, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Items[0].DistanceKm != 12.35 {
		t.Fatalf("distance_km = %v, want 12.35", page.Items[0].DistanceKm)
	}
}
