package dto

type ComputeMatchesResponse struct {
	Matches []Profile `json:"matches"`
	Count   int       `json:"count"`
	Message string    `json:"message"`
}

type SaveMatchesResponse struct {
	Matches     []Profile          `json:"matches"`
	Count       int                `json:"count"`
	Message     string             `json:"message"`
	Connections ConnectionResponse `json:"connections"`
}

type MutualMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
	Count   int             `json:"count"`
}
