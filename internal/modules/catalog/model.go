package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/georgemunganga/storefront/internal/apperr"
)

var ErrUnknownField = apperr.Validation("Editable fields are productname, numberofunits and priceperunit.")

// Field is an editable product column.
type Field int

const (
	FieldProductName Field = iota + 1
	FieldNumberOfUnits
	FieldPricePerUnit
)

var fieldNames = map[string]Field{
	"1":             FieldProductName,
	"productname":   FieldProductName,
	"name":          FieldProductName,
	"2":             FieldNumberOfUnits,
	"numberofunits": FieldNumberOfUnits,
	"units":         FieldNumberOfUnits,
	"3":             FieldPricePerUnit,
	"priceperunit":  FieldPricePerUnit,
	"price":         FieldPricePerUnit,
}

// ParseField accepts a column name, a short alias or the field's menu number.
// Case, spaces and underscores are ignored.
func ParseField(s string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "").Replace(key)
	if f, ok := fieldNames[key]; ok {
		return f, nil
	}
	return 0, ErrUnknownField
}

func (f Field) String() string {
	switch f {
	case FieldProductName:
		return "productname"
	case FieldNumberOfUnits:
		return "numberofunits"
	case FieldPricePerUnit:
		return "priceperunit"
	default:
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
}

// Change is a parsed new value for one field.
type Change struct {
	Field Field
	Name  string
	Units int
	Price decimal.Decimal
}

// ParseChange parses raw as the new value of field.
func ParseChange(field Field, raw string) (Change, error) {
	raw = strings.TrimSpace(raw)
	c := Change{Field: field}
	switch field {
	case FieldProductName:
		if raw == "" {
			return c, apperr.MalformedInput("product name", errors.New("product name is empty"))
		}
		c.Name = raw
	case FieldNumberOfUnits:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c, apperr.MalformedInput("number of units", err)
		}
		if n < 0 {
			return c, apperr.MalformedInput("number of units", fmt.Errorf("%d is negative", n))
		}
		c.Units = n
	case FieldPricePerUnit:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return c, apperr.MalformedInput("price per unit", err)
		}
		if d.IsNegative() {
			return c, apperr.MalformedInput("price per unit", fmt.Errorf("%s is negative", d))
		}
		c.Price = d.Round(2)
	default:
		return c, ErrUnknownField
	}
	return c, nil
}

// Value is the new column value as it is bound into the update.
func (c Change) Value() interface{} {
	switch c.Field {
	case FieldProductName:
		return c.Name
	case FieldNumberOfUnits:
		return c.Units
	default:
		return c.Price
	}
}

func (c Change) String() string {
	switch c.Field {
	case FieldProductName:
		return c.Name
	case FieldNumberOfUnits:
		return strconv.Itoa(c.Units)
	default:
		return c.Price.StringFixed(2)
	}
}

// ProductUpdate is the audit record of one change made by a manager.
type ProductUpdate struct {
	Number      int       `db:"updatenumber"`
	ManagerID   int       `db:"managerid"`
	StoreID     int       `db:"storeid"`
	ProductName string    `db:"productname"`
	UpdatedOn   time.Time `db:"updatedon"`
}
