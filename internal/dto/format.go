package dto

// FormatQuery defines the query parameters of the public format endpoint.
type FormatQuery struct {
	Value     string `form:"value" binding:"required"`
	Currency  string `form:"currency" binding:"required,len=3,uppercase"`
	Locale    string `form:"locale"`
	HTML      bool   `form:"html"`
	Normalize bool   `form:"normalize"`
}

// FormatOptions carries the formatting switches through the service layer.
type FormatOptions struct {
	Locale    string
	HTML      bool
	Normalize bool
}

// FormatResponse is the payload returned for a formatted amount.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Currency  string `json:"currency"`
}
