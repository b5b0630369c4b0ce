package fetchers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/logger"
)

// NBGFetcher reads the daily rates published by the National Bank of Georgia.
type NBGFetcher struct {
	URL    string
	Client *http.Client
}

func NewNBGFetcher(config BaseConfig) NBGFetcher {
	client := config.Client

	if client == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}

		client = &http.Client{Timeout: timeout}
	}

	url := config.URL
	if url == "" {
		url = NBGURL
	}

	return NBGFetcher{
		URL:    url,
		Client: client,
	}
}

func (n NBGFetcher) Fetch(ctx context.Context, date *time.Time) ([]lari.CurrencyRate, error) {
	req, err := getData(ctx, n.URL, date)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	logger.Debug("fetching rates", zap.String("url", req.URL.String()))

	res, err := n.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch rates")
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read rates response")
	}

	var days []nbgDay

	if err := json.Unmarshal(body, &days); err != nil {
		return nil, errors.Wrap(err, "unmarshalling rates response")
	}

	if len(days) == 0 || days[0].Currencies == nil {
		return []lari.CurrencyRate{}, nil
	}

	return days[0].Currencies, nil
}
