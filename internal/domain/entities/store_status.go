package entities

// StoreStatus describes the lead store backing the service.
type StoreStatus struct {
	Kind        string
	Name        string
	Connected   bool
	Collections []string
}
