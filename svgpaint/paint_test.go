package svgpaint

import "testing"

func TestServerRefCounting(t *testing.T) {
	_, s, err := Parse("url(#g1) red")
	if err != nil {
		t.Fatal(err)
	}

	// share the value across four more shapes
	const shapes = 4
	for i := 0; i < shapes; i++ {
		s.Ref()
	}
	if got := s.refs(); got != shapes+1 {
		t.Fatalf("expected %d references, got %d", shapes+1, got)
	}

	for i := 0; i < shapes; i++ {
		if s.Unref() {
			t.Fatal("server released while still referenced")
		}
	}
	if got := s.refs(); got != 1 {
		t.Fatalf("expected one live reference, got %d", got)
	}
	// the payload must survive untouched until the last reference
	if iri := s.Paint().(Iri); iri.Ref != "g1" {
		t.Errorf("payload corrupted: %+v", iri)
	}
	if !s.Unref() {
		t.Error("dropping the last reference should release the server")
	}
}

func TestCacheInterning(t *testing.T) {
	cache := NewCache()

	_, first, err := cache.Get("url(#g1) red")
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := cache.Get("url(#g1) red")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("identical specs should share one server")
	}
	// cache + two callers
	if got := first.refs(); got != 3 {
		t.Errorf("expected 3 references, got %d", got)
	}

	if first.Unref() || second.Unref() {
		t.Error("cached server released while interned")
	}
	cache.Clear()
	if first.refs() != 0 {
		t.Error("expected the cleared cache to drop its reference")
	}

	inherit, s, err := cache.Get("inherit")
	if err != nil || !inherit || s != nil {
		t.Errorf("inherit: got (%v, %v, %v)", inherit, s, err)
	}
}
