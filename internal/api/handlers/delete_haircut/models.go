package delete_haircut

// DeleteHaircutRequest HTTP request model
type DeleteHaircutRequest struct {
	PIN string `json:"pin"`
}
