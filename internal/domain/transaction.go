package domain

// Transaction is one raw row from an explorer txlist response.
// To and Input are pointers: explorers blank or omit them for contract
// creations and plain value transfers, and an absent field must stay
// distinguishable from an empty string.
type Transaction struct {
	To        *string `json:"to"`
	Input     *string `json:"input"`
	TimeStamp string  `json:"timeStamp"` // unix seconds, decimal string
}
