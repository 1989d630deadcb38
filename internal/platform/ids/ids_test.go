package ids

import (
	"testing"
	"time"
)

func TestNextSkipsTakenMillis(t *testing.T) {
	now := time.UnixMilli(1704794400000)
	set := Set{"S1704794400000": {}, "S1704794400001": {}}

	if got := Next("S", now, set.Taken); got != "S1704794400002" {
		t.Fatalf("expected S1704794400002, got %s", got)
	}
	if got := Next("DA", now, set.Taken); got != "DA1704794400000" {
		t.Fatalf("expected an untouched prefix to use now, got %s", got)
	}
}

func TestFreeAddsSuffix(t *testing.T) {
	set := Of([]string{"E17047944000000", "E17047944000000-2"}, func(id string) string { return id })

	if got := Free("E17047944000001", set.Taken); got != "E17047944000001" {
		t.Fatalf("expected unused id unchanged, got %s", got)
	}
	got := Free("E17047944000000", set.Taken)
	if got != "E17047944000000-3" {
		t.Fatalf("expected E17047944000000-3, got %s", got)
	}
	set.Add(got)
	if !set.Taken(got) {
		t.Fatal("expected added id to be taken")
	}
}
