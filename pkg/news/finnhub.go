package news

import (
	"context"
	"strconv"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubClient{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(res))
	for _, item := range res {
		if limit > 0 && len(articles) >= limit {
			break
		}

		a := Article{Source: c.Name()}

		if item.Id != nil {
			a.ExternalID = strconv.FormatInt(*item.Id, 10)
		}
		if item.Headline != nil {
			a.Headline = *item.Headline
		}
		if item.Summary != nil {
			a.Detail = *item.Summary
		}
		if item.Url != nil {
			a.URL = *item.Url
		}
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}
		if item.Source != nil {
			a.Publisher = *item.Source
		}
		if item.Related != nil && *item.Related != "" {
			a.Symbols = strings.Split(*item.Related, ",")
		} else {
			a.Symbols = []string{}
		}

		articles = append(articles, a)
	}

	return articles, nil
}
