package supply

// Request asks a warehouse to replenish a store's product.
type Request struct {
	Number         int    `db:"requestnumber"`
	ManagerID      int    `db:"managerid"`
	WarehouseID    int    `db:"warehouseid"`
	StoreID        int    `db:"storeid"`
	ProductName    string `db:"productname"`
	UnitsRequested int    `db:"unitsrequested"`
}

// Receipt is a filed request and the store's stock after it.
type Receipt struct {
	Request  *Request
	NewStock int
}
