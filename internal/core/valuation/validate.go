package valuation

import (
	"fmt"

	"ave-engine/internal/core/domain"
)

// Validate rejects malformed requests before any rate lookup happens. Every
// returned error wraps domain.ErrInvalidRequest.
func Validate(req domain.CalculationRequest) error {
	if len(req.Channels) == 0 {
		return invalid("channels must not be empty")
	}
	seen := make(map[int64]struct{}, len(req.Channels))
	for i, ch := range req.Channels {
		if ch.Impressions < 0 {
			return invalid("channels[%d]: impressions must be non-negative", i)
		}
		if _, dup := seen[ch.ChannelID]; dup {
			return invalid("channels[%d]: channel %d listed twice", i, ch.ChannelID)
		}
		seen[ch.ChannelID] = struct{}{}
	}

	switch {
	case req.IncludeEngagement && req.EngagementLevel == nil:
		return invalid("engagement included without an engagement level")
	case !req.IncludeEngagement && req.EngagementLevel != nil:
		return invalid("engagement level set but engagement not included")
	case req.EngagementLevel != nil && !req.EngagementLevel.Valid():
		return invalid("unknown engagement level %q", *req.EngagementLevel)
	}

	switch {
	case req.IncludeSentiment && req.Sentiment == nil:
		return invalid("sentiment included without a sentiment value")
	case !req.IncludeSentiment && req.Sentiment != nil:
		return invalid("sentiment set but sentiment not included")
	case req.Sentiment != nil && !req.Sentiment.Valid():
		return invalid("unknown sentiment %q", *req.Sentiment)
	}

	if req.AsOfDate.IsZero() {
		return invalid("as-of date is required")
	}
	if req.Attribution.ActorID <= 0 {
		return invalid("actor is required")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, fmt.Sprintf(format, args...))
}
