package dfa

import "testing"

func TestAcceptRejectsUnknownByte(t *testing.T) {
	d := minimized(t, "ab")
	if d.Accept([]byte("xy")) {
		t.Fatal("expected Accept to reject bytes outside the pattern's alphabet")
	}
}

func TestAcceptEmptyStringLanguage(t *testing.T) {
	d := minimized(t, "a{0}")
	if !d.Accept(nil) {
		t.Fatal("expected a{0} to accept the empty string")
	}
	if d.Accept([]byte("a")) {
		t.Fatal("expected a{0} to reject \"a\"")
	}
}

func TestAcceptExactMatchOnly(t *testing.T) {
	d := minimized(t, "abc")
	if d.Accept([]byte("abcd")) || d.Accept([]byte("ab")) {
		t.Fatal("expected exact whole-string match semantics")
	}
}
