package todo

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultOrderString ranks important first and cancelled last.
const DefaultOrderString = "!,*,?,/,,x,-"

// unranked sorts after every configured rank.
const unranked = math.MaxInt

// Order maps a status character to its rank. Lower ranks sort first.
type Order map[rune]int

// DefaultOrder returns the order described by DefaultOrderString.
func DefaultOrder() Order {
	order, err := ParseOrder(DefaultOrderString)
	if err != nil {
		panic(err)
	}
	return order
}

// Rank returns the rank of status, or a rank after every configured
// rank if status is not in the order.
func (o Order) Rank(status rune) int {
	if rank, ok := o[status]; ok {
		return rank
	}
	return unranked
}

// Statuses returns the configured status characters by ascending rank.
func (o Order) Statuses() []rune {
	out := make([]rune, 0, len(o))
	for r := range o {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if o[out[i]] != o[out[j]] {
			return o[out[i]] < o[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// OrderError reports an invalid token in an order string.
type OrderError struct {
	Index int
	Token string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("order token %d (%q) must be a single character or empty", e.Index, e.Token)
}

// ParseOrder parses a comma-separated priority list. Each token is a single
// character or empty, where empty stands for the space character. The rank
// is the token's position. Trailing commas are ignored.
func ParseOrder(s string) (Order, error) {
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	order := Order{}
	if s == "" {
		return order, nil
	}

	for idx, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		switch utf8.RuneCountInString(token) {
		case 0:
			order[' '] = idx
		case 1:
			r, _ := utf8.DecodeRuneInString(token)
			order[r] = idx
		default:
			return nil, &OrderError{Index: idx, Token: token}
		}
	}

	return order, nil
}
