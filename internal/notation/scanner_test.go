package notation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsMoveToken(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"e4", true},
		{"Nf3", true},
		{"O-O", true},
		{"0-0", true},
		{"1.", false},
		{"12.", false},
		{"12...", false},
		{"12", false},
		{"...", false},
		{"1-0", false},
		{"0-1", false},
		{"1/2-1/2", false},
		{"*", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			if got := IsMoveToken(tt.tok); got != tt.want {
				t.Errorf("IsMoveToken(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func scanAll(t *testing.T, input string) ([]Token, *Scanner) {
	t.Helper()
	s := NewScanner(strings.NewReader(input))
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	return tokens, s
}

func texts(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       []string
		wantResult string
	}{
		{
			name:       "numbered moves",
			input:      "1. e4 e5 2. Nf3 Nc6 1-0\n",
			want:       []string{"e4", "e5", "Nf3", "Nc6"},
			wantResult: "1-0",
		},
		{
			name:  "joined move numbers",
			input: "1.e4 e5 2.Nf3 2...Nc6",
			want:  []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:  "coordinate moves without numbers",
			input: "e2e4\ne7e5\n\ng1f3",
			want:  []string{"e2e4", "e7e5", "g1f3"},
		},
		{
			name:       "comments and glyphs",
			input:      "1. e4 {best by test} e5 $1 ; rest of line\n2. Nf3 {multi\nline} Nc6 *",
			want:       []string{"e4", "e5", "Nf3", "Nc6"},
			wantResult: "*",
		},
		{
			name:  "variations",
			input: "1. e4 (1. d4 d5 (1... Nf6)) e5",
			want:  []string{"e4", "e5"},
		},
		{
			name:       "tag pairs",
			input:      "[Event \"Casual\"]\n[Result \"0-1\"]\n\n1. f3 e5 2. g4 Qh4# 0-1\n",
			want:       []string{"f3", "e5", "g4", "Qh4#"},
			wantResult: "0-1",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, s := scanAll(t, tt.input)
			if diff := cmp.Diff(tt.want, texts(tokens)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if s.Result() != tt.wantResult {
				t.Errorf("Result() = %q, want %q", s.Result(), tt.wantResult)
			}
		})
	}
}

func TestScanner_LineNumbers(t *testing.T) {
	tokens, _ := scanAll(t, "1. e4 e5\n2. Nf3\n\n3. Bb5")
	want := []Token{{"e4", 1}, {"e5", 1}, {"Nf3", 2}, {"Bb5", 4}}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
