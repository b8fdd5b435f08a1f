package dto

// ListRecordsParams carries the common query parameters of the record listings.
type ListRecordsParams struct {
	FiscalYearID string  `form:"fiscalYearID" binding:"required,uuid"`
	Limit        int     `form:"limit"`
	NextToken    *string `form:"nextToken"`
}
