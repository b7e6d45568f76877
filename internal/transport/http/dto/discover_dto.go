package dto

type DiscoverResponse struct {
	Profiles   []Profile `json:"profiles"`
	Total      int       `json:"total"`
	HasMore    bool      `json:"has_more"`
	NextOffset int       `json:"next_offset"`
}
