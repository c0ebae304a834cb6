package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ave-engine/internal/core/domain"
)

// calculationRequest is the wire form of domain.CalculationRequest.
type calculationRequest struct {
	Channels          []domain.ChannelInput `json:"channels"`
	IncludePlatform   bool                  `json:"includePlatform"`
	IncludeEngagement bool                  `json:"includeEngagement"`
	EngagementLevel   *string               `json:"engagementLevel"`
	IncludeSentiment  bool                  `json:"includeSentiment"`
	Sentiment         *string               `json:"sentiment"`
	// AsOfDate is a calendar day (YYYY-MM-DD). Empty means today in UTC.
	AsOfDate    string `json:"asOfDate"`
	Attribution struct {
		ActorID    int64  `json:"actorId"`
		CampaignID *int64 `json:"campaignId"`
		BrandID    *int64 `json:"brandId"`
	} `json:"attribution"`
}

// decodeCalculationRequest parses the body into a domain request. Errors
// wrap domain.ErrInvalidRequest. Consistency between flags and values is
// left to the engine's validation.
func decodeCalculationRequest(r *http.Request, now time.Time) (domain.CalculationRequest, error) {
	var in calculationRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return domain.CalculationRequest{}, fmt.Errorf("%w: invalid JSON: %v", domain.ErrInvalidRequest, err)
	}

	req := domain.CalculationRequest{
		Channels:          in.Channels,
		IncludePlatform:   in.IncludePlatform,
		IncludeEngagement: in.IncludeEngagement,
		IncludeSentiment:  in.IncludeSentiment,
		AsOfDate:          domain.Day(now),
		Attribution: domain.Attribution{
			ActorID:    in.Attribution.ActorID,
			CampaignID: in.Attribution.CampaignID,
			BrandID:    in.Attribution.BrandID,
		},
	}
	if in.EngagementLevel != nil {
		l, err := domain.ParseEngagementLevel(*in.EngagementLevel)
		if err != nil {
			return domain.CalculationRequest{}, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		req.EngagementLevel = &l
	}
	if in.Sentiment != nil {
		s, err := domain.ParseSentiment(*in.Sentiment)
		if err != nil {
			return domain.CalculationRequest{}, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		req.Sentiment = &s
	}
	if in.AsOfDate != "" {
		d, err := time.Parse(domain.DateLayout, in.AsOfDate)
		if err != nil {
			return domain.CalculationRequest{}, fmt.Errorf("%w: asOfDate must be YYYY-MM-DD", domain.ErrInvalidRequest)
		}
		req.AsOfDate = d
	}
	return req, nil
}
