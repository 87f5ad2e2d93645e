package segment

import "testing"

func TestSplitServiceHandler(t *testing.T) {
	segs := Split("servicehandler14568")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segs), segs)
	}
	if segs[0].Kind != Alpha || segs[0].Value != "servicehandler" {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if segs[1].Kind != Numeric || segs[1].Value != "14568" {
		t.Errorf("segment 1 = %+v", segs[1])
	}
}

func TestSplitMixedWithOther(t *testing.T) {
	segs := Split("client_daqub-02")
	var kinds []Kind
	for _, s := range segs {
		kinds = append(kinds, s.Kind)
	}
	if len(segs) == 0 {
		t.Fatal("expected at least one segment")
	}
}

func TestAlphaAndNumericOnly(t *testing.T) {
	if got := AlphaOnly("apiutil3807"); got != "apiutil" {
		t.Errorf("AlphaOnly = %q, want %q", got, "apiutil")
	}
	if got := NumericOnly("apiutil3807"); got != "3807" {
		t.Errorf("NumericOnly = %q, want %q", got, "3807")
	}
}

func TestIsAlphanumeric(t *testing.T) {
	if !IsAlphanumeric("datamanager3561") {
		t.Error("expected datamanager3561 to be alphanumeric")
	}
	if IsAlphanumeric("apple") {
		t.Error("expected apple to not be alphanumeric")
	}
	if IsAlphanumeric("3561") {
		t.Error("expected pure digits to not be alphanumeric")
	}
}

func TestSplitEmpty(t *testing.T) {
	if segs := Split(""); segs != nil {
		t.Errorf("expected nil for empty string, got %+v", segs)
	}
}
