package chess

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input   string
		want    Square
		wantErr bool
	}{
		{"a1", Square{File: 0, Rank: 0}, false},
		{"e4", Square{File: 4, Rank: 3}, false},
		{"h8", Square{File: 7, Rank: 7}, false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"a0", NoSquare, true},
		{"e", NoSquare, true},
		{"e44", NoSquare, true},
		{"E4", NoSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSquare_String(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{NewSquare(0, 0), "a1"},
		{NewSquare(4, 3), "e4"},
		{NewSquare(7, 7), "h8"},
		{NoSquare, "-"},
		{NewSquare(8, 0), "-"},
	}

	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.sq, got, tt.want)
		}
	}
}

func TestSquare_Step(t *testing.T) {
	tests := []struct {
		from, to string
		want     Square
	}{
		{"a1", "h8", Square{File: 1, Rank: 1}},
		{"e4", "e1", Square{File: 0, Rank: -1}},
		{"h1", "a1", Square{File: -1, Rank: 0}},
		{"g1", "f3", Square{File: -1, Rank: 1}},
	}

	for _, tt := range tests {
		got := MustSquare(tt.to).Sub(MustSquare(tt.from)).Step()
		if got != tt.want {
			t.Errorf("Step(%s->%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestSquare_Add(t *testing.T) {
	if got := MustSquare("e4").Add(Square{File: 1, Rank: -2}); got != MustSquare("f2") {
		t.Errorf("e4 + (1,-2) = %v, want f2", got)
	}
	if MustSquare("h8").Add(Square{File: 1}).InBounds() {
		t.Error("square past the h-file should be off the board")
	}
}

func TestAllSquares(t *testing.T) {
	all := AllSquares()
	if len(all) != 64 {
		t.Fatalf("len(AllSquares()) = %d, want 64", len(all))
	}
	if all[0] != MustSquare("a1") || all[8] != MustSquare("a2") || all[63] != MustSquare("h8") {
		t.Errorf("AllSquares() order wrong: %v %v %v", all[0], all[8], all[63])
	}
}

func TestMustSquare_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustSquare(\"z9\") did not panic")
		}
	}()
	MustSquare("z9")
}
