package request

// GuessRequest is the request body for submitting a word
type GuessRequest struct {
	Word string `json:"word"`
}

// SolveRequest is the request body for listing the words on a board
type SolveRequest struct {
	Rows []string `json:"rows"`
}
