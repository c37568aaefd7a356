package nfa

import (
	"reflect"
	"testing"
)

func TestAlphabetAddHas(t *testing.T) {
	var a Alphabet
	a.Add('a')
	a.Add('z')
	a.Add(0xff)

	if !a.Has('a') || !a.Has('z') || !a.Has(0xff) {
		t.Fatal("expected added bytes to be present")
	}
	if a.Has('b') {
		t.Fatal("did not expect 'b' to be present")
	}
	if got := a.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
}

func TestAlphabetSymbolsAscending(t *testing.T) {
	var a Alphabet
	for _, b := range []byte{'z', 'a', 'm', 0, 255} {
		a.Add(b)
	}
	got := a.Symbols()
	want := []byte{0, 'a', 'm', 'z', 255}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Symbols() = %v, want %v", got, want)
	}
}

func TestAlphabetEmpty(t *testing.T) {
	var a Alphabet
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
	if len(a.Symbols()) != 0 {
		t.Fatal("expected no symbols")
	}
}
