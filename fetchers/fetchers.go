package fetchers

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/malusev998/lari"
)

const (
	NBGURL         = "https://nbg.gov.ge/gw/api/ct/monetarypolicy/currencies/en/json/"
	DefaultTimeout = 10 * time.Second
)

type (
	BaseConfig struct {
		URL     string
		Timeout time.Duration
		Client  *http.Client
	}

	nbgDay struct {
		Date       string              `json:"date"`
		Currencies []lari.CurrencyRate `json:"currencies"`
	}
)

var (
	ErrClient  = errors.New("client error")
	ErrServer  = errors.New("server error")
	ErrUnknown = errors.New("unknown error")
)

func getData(ctx context.Context, url string, date *time.Time) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	dateParam := ""
	if date != nil {
		dateParam = date.Format(lari.DateFormat)
	}

	q := req.URL.Query()
	q.Set("date", dateParam)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func handleHTTPStatusCodeError(res *http.Response) error {
	switch {
	case res.StatusCode == http.StatusOK:
		return nil
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return errors.Wrapf(ErrClient, "status %d", res.StatusCode)
	case res.StatusCode >= http.StatusInternalServerError:
		return errors.Wrapf(ErrServer, "status %d", res.StatusCode)
	default:
		return errors.Wrapf(ErrUnknown, "status %d", res.StatusCode)
	}
}
