package order

import "time"

// TimeLayout is how order times are shown.
const TimeLayout = "2006-01-02 15:04:05"

// Order is one product purchase by a customer at a store.
type Order struct {
	Number       int       `db:"ordernumber"`
	CustomerID   int       `db:"customerid"`
	StoreID      int       `db:"storeid"`
	ProductName  string    `db:"productname"`
	UnitsOrdered int       `db:"unitsordered"`
	OrderTime    time.Time `db:"ordertime"`
}

// Receipt is the outcome of a placed order.
type Receipt struct {
	Order          *Order
	RemainingUnits int
}
