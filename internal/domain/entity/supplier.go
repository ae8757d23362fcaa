package entity

// Supplier proveedor del pequeño ERP.
type Supplier struct {
	ID          int64
	Name        string
	ContactName string
	Phone       string
	Email       string
	Notes       string
}
