package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("e\r\n  spaced words  \nlast"), &out)

	tests := []struct {
		prompt string
		want   string
	}{
		{"mode: ", "e"},
		{"words: ", "  spaced words  "},
		{"tail: ", "last"},
	}
	for _, tt := range tests {
		got, err := p.Line(tt.prompt)
		if err != nil {
			t.Fatalf("Line(%q) error: %v", tt.prompt, err)
		}
		if got != tt.want {
			t.Errorf("Line(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}

	if _, err := p.Line("more: "); !errors.Is(err, io.EOF) {
		t.Errorf("Line at end of input err = %v, want io.EOF", err)
	}
	if out.String() != "mode: words: tail: more: " {
		t.Errorf("prompts written = %q", out.String())
	}
}

func TestPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\nhunter2\n"), &out)

	empty, err := p.Password("pw: ")
	if err != nil || empty != "" {
		t.Errorf("Password() = %q, %v; want empty", empty, err)
	}
	pw, err := p.Password("pw: ")
	if err != nil || pw != "hunter2" {
		t.Errorf("Password() = %q, %v", pw, err)
	}
}

func TestLine_EmptyLine(t *testing.T) {
	p := New(strings.NewReader("\n"), io.Discard)
	got, err := p.Line("")
	if err != nil || got != "" {
		t.Errorf("Line() = %q, %v; want empty line", got, err)
	}
}
