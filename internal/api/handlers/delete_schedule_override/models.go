package delete_schedule_override

// DeleteOverrideRequest HTTP request model
type DeleteOverrideRequest struct {
	Confirmed bool `json:"confirmed"`
}
