package response

// ValidateTicketsResponse reports how many of the requested codes were
// actually flipped; a shortfall means some codes did not belong to the
// family's materialized tickets.
type ValidateTicketsResponse struct {
	Requested int   `json:"requested"`
	Updated   int64 `json:"updated"`
}
