package integration

// SyncResult summarizes one catalog sync run
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// InventoryResult summarizes one inventory refresh run
type InventoryResult struct {
	Refreshed int `json:"refreshed"`
	Skipped   int `json:"skipped"`
}
