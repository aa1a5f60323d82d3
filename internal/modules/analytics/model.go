package analytics

import (
	"fmt"
	"strings"
)

// Ranking orders the popular customers view by order count.
type Ranking string

const (
	// Ascending lists the customers with the fewest orders first.
	Ascending  Ranking = "ascending"
	Descending Ranking = "descending"
)

func ParseRanking(s string) (Ranking, error) {
	switch r := Ranking(strings.ToLower(strings.TrimSpace(s))); r {
	case Ascending, Descending:
		return r, nil
	default:
		return "", fmt.Errorf("unknown ranking %q", s)
	}
}

// PopularProduct is a product and how often it was ordered across a manager's stores.
type PopularProduct struct {
	ProductName string `db:"productname"`
	OrderCount  int    `db:"numorders"`
}

// PopularCustomer is a customer and their distinct orders across a manager's stores.
type PopularCustomer struct {
	UserID     int     `db:"userid"`
	Name       string  `db:"name"`
	Latitude   float64 `db:"latitude"`
	Longitude  float64 `db:"longitude"`
	OrderCount int     `db:"numorders"`
}
