package search

import "testing"

func TestStaticResolverSearch(t *testing.T) {
	r := NewStaticResolver(DefaultDestinations())

	got := r.Search("los angeles")
	if len(got) != 1 || got[0].Name != "Los Angeles, CA" {
		t.Fatalf("unexpected result: %+v", got)
	}

	// "california" matches addresses.
	if got := r.Search("California"); len(got) != 3 {
		t.Fatalf("expected 3 california matches got %d", len(got))
	}

	if got := r.Search("san"); len(got) != 2 {
		t.Fatalf("expected 2 matches got %d", len(got))
	}

	if got := r.Search("nowhere"); got != nil {
		t.Fatalf("expected no matches got %+v", got)
	}

	if got := r.Search("  "); got != nil {
		t.Fatalf("blank query should match nothing")
	}
}
