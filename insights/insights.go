package insights

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"staymate/models"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sashabaranov/go-openai"
)

var (
	pitchRegexp   = regexp.MustCompile(`(?i)PITCH:\s*(.*)`)
	pointsRegexp  = regexp.MustCompile(`(?i)POINTS:\s*(.*)`)
	vibeRegexp    = regexp.MustCompile(`(?i)VIBE:\s*(.*)`)
	sourcesRegexp = regexp.MustCompile(`(?i)SOURCE:\s*(.*)`)
)

// Defaults used when a section is missing or the whole call fails. The
// detail view renders these instead of an error.
const (
	defaultPitch = "Discover a comfortable stay in a prime location."
	defaultVibe  = "Convenient and accessible neighborhood."
)

// ChatClient is the slice of the OpenAI client we use; *openai.Client
// satisfies it, tests substitute a stub.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service looks up AI-generated neighborhood insights for listings and
// caches them per listing id so reopening a detail view does not re-bill.
type Service struct {
	client ChatClient
	cache  *ttlcache.Cache[string, models.Insight]
}

func NewService(client ChatClient, ttl time.Duration) *Service {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, models.Insight](ttl),
		ttlcache.WithDisableTouchOnHit[string, models.Insight](),
	)
	go cache.Start()
	return &Service{client: client, cache: cache}
}

// Stop ends the cache's expiry loop. Called on graceful shutdown.
func (s *Service) Stop() {
	s.cache.Stop()
}

func prompt(name, address string) string {
	return fmt.Sprintf(`Search for information about the neighborhood of %q at %q.
Provide:
1. A short, catchy sales pitch for this stay.
2. 3 specific nearby points of interest (parks, famous cafes, malls, or transit hubs).
3. A summary of the neighborhood vibe (e.g., safety, quietness, or accessibility).

Format your response exactly like this:
PITCH: [Your pitch here]
POINTS: [Point 1], [Point 2], [Point 3]
VIBE: [Your vibe summary here]

Optionally list reference web sources, one per line:
SOURCE: [Title] | [URI]`, name, address)
}

// Lookup fetches the insight for a listing. Callers must handle the error
// arm explicitly; Fallback() is the neutral value to render in that case.
func (s *Service) Lookup(ctx context.Context, listingID, name, address string) (models.Insight, error) {
	if item := s.cache.Get(listingID); item != nil {
		return item.Value(), nil
	}

	if s.client == nil {
		return models.Insight{}, errors.New("insight lookup not configured")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt(name, address)},
		},
		MaxTokens: 500,
	})
	if err != nil {
		log.Printf("[insights] lookup failed for %s: %v", listingID, err)
		return models.Insight{}, err
	}
	if len(resp.Choices) == 0 {
		return models.Insight{}, errors.New("empty completion response")
	}

	insight := Parse(resp.Choices[0].Message.Content)
	s.cache.Set(listingID, insight, ttlcache.DefaultTTL)
	return insight, nil
}

// Parse extracts the labeled sections from the completion text. Missing or
// malformed sections fall back to fixed defaults; sources are deduplicated
// by URI, first occurrence wins.
func Parse(text string) models.Insight {
	insight := models.Insight{
		Pitch:        defaultPitch,
		NearbyPoints: []string{},
		Vibe:         defaultVibe,
		Sources:      []models.Source{},
	}

	if m := pitchRegexp.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		insight.Pitch = strings.TrimSpace(m[1])
	}
	if m := pointsRegexp.FindStringSubmatch(text); m != nil {
		for _, p := range strings.Split(m[1], ",") {
			if p = strings.TrimSpace(p); p != "" {
				insight.NearbyPoints = append(insight.NearbyPoints, p)
			}
		}
	}
	if m := vibeRegexp.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		insight.Vibe = strings.TrimSpace(m[1])
	}

	seen := make(map[string]bool)
	for _, m := range sourcesRegexp.FindAllStringSubmatch(text, -1) {
		title, uri := splitSource(m[1])
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		insight.Sources = append(insight.Sources, models.Source{Title: title, URI: uri})
	}

	return insight
}

func splitSource(line string) (title, uri string) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) == 2 {
		title = strings.TrimSpace(parts[0])
		uri = strings.TrimSpace(parts[1])
	} else {
		uri = strings.TrimSpace(line)
	}
	if title == "" {
		title = "Reference Source"
	}
	return title, uri
}

// Fallback is the neutral insight rendered when the external call fails.
func Fallback() models.Insight {
	return models.Insight{
		Pitch:        defaultPitch,
		NearbyPoints: []string{},
		Vibe:         defaultVibe,
		Sources:      []models.Source{},
	}
}
