package todo

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Order
	}{
		{"empty", "", Order{}},
		{"empty token is space", "a,,b", Order{'a': 0, ' ': 1, 'b': 2}},
		{"default", DefaultOrderString, Order{'!': 0, '*': 1, '?': 2, '/': 3, ' ': 4, 'x': 5, '-': 6}},
		{"trailing comma", "a,b,", Order{'a': 0, 'b': 1}},
		{"trailing commas", "a,b,,,", Order{'a': 0, 'b': 1}},
		{"whitespace trimmed", " a , b ", Order{'a': 0, 'b': 1}},
		{"blank token is space", "x, ,-", Order{'x': 0, ' ': 1, '-': 2}},
		{"duplicate keeps last", "a,b,a", Order{'a': 2, 'b': 1}},
		{"unicode", "✓,✗", Order{'✓': 0, '✗': 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrder(tt.input)
			if err != nil {
				t.Fatalf("ParseOrder(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOrder(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOrderRejectsLongTokens(t *testing.T) {
	_, err := ParseOrder("x,done")
	if err == nil {
		t.Fatal("expected error for multi-character token")
	}
	var oe *OrderError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OrderError, got %T", err)
	}
	if oe.Index != 1 || oe.Token != "done" {
		t.Errorf("OrderError = %+v, want index 1 token done", oe)
	}
}

func TestOrderRank(t *testing.T) {
	order := Order{'!': 0, 'x': 1}
	if got := order.Rank('!'); got != 0 {
		t.Errorf("Rank('!') = %d, want 0", got)
	}
	if got := order.Rank('x'); got != 1 {
		t.Errorf("Rank('x') = %d, want 1", got)
	}
	if got := order.Rank('?'); got <= 1 {
		t.Errorf("Rank('?') = %d, want greater than every configured rank", got)
	}
}

func TestStatusName(t *testing.T) {
	if got := StatusName(' '); got != "unchecked" {
		t.Errorf("StatusName(' ') = %q", got)
	}
	if got := StatusName('/'); got != "in progress" {
		t.Errorf("StatusName('/') = %q", got)
	}
	if got := StatusName('k'); got != "" {
		t.Errorf("StatusName('k') = %q, want empty", got)
	}
}
