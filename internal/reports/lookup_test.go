package reports

import "testing"

func TestNameResolver(t *testing.T) {
	resolver := NewNameResolver()
	resolver.Add(1, "Filters")

	if got := resolver.Resolve(1); got != "Filters" {
		t.Fatalf("expected Filters, got %s", got)
	}
	if got := resolver.Resolve(2); got != UnknownName {
		t.Fatalf("expected fallback, got %s", got)
	}
	if !resolver.Has(1) || resolver.Has(2) {
		t.Fatal("unexpected membership")
	}
}

func TestNameResolverNil(t *testing.T) {
	var resolver *NameResolver
	if got := resolver.Resolve(1); got != UnknownName {
		t.Fatalf("expected fallback on nil resolver, got %s", got)
	}
	if resolver.Has(1) {
		t.Fatal("nil resolver should resolve nothing")
	}
}
