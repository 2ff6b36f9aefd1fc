package square

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{name: "a1", notation: "a1", want: A1},
		{name: "h8", notation: "h8", want: H8},
		{name: "e4", notation: "e4", want: New(4, 4)},
		{name: "empty", notation: "", wantErr: ErrInvalidNotation},
		{name: "bad file", notation: "i4", wantErr: ErrInvalidNotation},
		{name: "bad rank", notation: "a9", wantErr: ErrInvalidNotation},
		{name: "too long", notation: "e44", wantErr: ErrInvalidNotation},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromNotation(%q) err = %v, want %v", tt.notation, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromNotation(%q) unexpected err: %v", tt.notation, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FromNotation(%q) mismatch (-want +got):\n%s", tt.notation, diff)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []string{"a1", "h1", "a8", "h8", "e4", "d5"} {
		sq, err := FromNotation(n)
		if err != nil {
			t.Fatalf("FromNotation(%q): %v", n, err)
		}
		if got := sq.Notation(); got != n {
			t.Fatalf("Notation() = %q, want %q", got, n)
		}
	}
}

func TestRowForwardConvention(t *testing.T) {
	t.Parallel()
	// White's forward direction decreases the index by 8; row 7 is rank 1.
	e2, _ := FromNotation("e2")
	e4, _ := FromNotation("e4")
	if e4 >= e2 {
		t.Fatalf("expected e4 (%d) < e2 (%d) under the row-0-is-rank-8 convention", e4, e2)
	}
	if e2.Row() != 6 || e4.Row() != 4 {
		t.Fatalf("unexpected rows: e2=%d e4=%d", e2.Row(), e4.Row())
	}
}
