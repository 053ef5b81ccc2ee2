package main

import "testing"

func TestSchemaForKnownKinds(t *testing.T) {
	for _, kind := range []string{"common", "info", "author"} {
		if _, err := schemaFor(kind); err != nil {
			t.Fatalf("schemaFor(%q) returned an error: %v", kind, err)
		}
	}
}

func TestSchemaForUnknownKind(t *testing.T) {
	if _, err := schemaFor("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown schema kind")
	}
}
