package dto

// QuoteRequest is the body of POST /api/v1/quotes. The gt=0 binding is the
// single place amount positivity is enforced; everything past this boundary
// treats the amount as valid.
type QuoteRequest struct {
	SrcCountry string  `json:"src_country" binding:"required"`
	DstCountry string  `json:"dst_country" binding:"required"`
	Rail       string  `json:"rail" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}
