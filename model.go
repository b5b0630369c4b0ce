package lari

import "time"

const (
	// DateFormat is how the selected date is persisted and sent to the rate feed.
	DateFormat = "2006-01-02"
	// DisplayDateFormat is used for history entries and for printing dates.
	DisplayDateFormat = "02.01.2006"
	// LocalCurrency is the code every amount is converted into.
	LocalCurrency = "GEL"
)

type (
	CurrencyRate struct {
		Code          string  `json:"code"`
		Rate          float64 `json:"rate"`
		Quantity      int     `json:"quantity,omitempty"`
		Name          string  `json:"name,omitempty"`
		Date          string  `json:"date,omitempty"`
		ValidFromDate string  `json:"validFromDate,omitempty"`
	}

	// HistoryEntry is one applied earning. Amount and Converted are kept as
	// strings exactly as they were displayed when the entry was created.
	HistoryEntry struct {
		ID        string     `json:"id,omitempty"`
		Date      string     `json:"date"`
		Amount    string     `json:"amount"`
		Code      string     `json:"code"`
		Converted string     `json:"converted"`
		CreatedAt *time.Time `json:"createdAt,omitempty"`
	}
)

func (c CurrencyRate) IsZero() bool {
	return c.Code == ""
}
