// Package synthetic provides the fallback DataSource: a fixed-shape dataset
// evaluated in memory, so every dashboard query stays answerable when the
// real store is unreachable.
package synthetic

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ralphbot-analytics/internal/analytics/core/domain"
	"ralphbot-analytics/internal/analytics/core/ports"
)

const (
	daysOfData         = 7
	interactionsPerDay = 6 // per bot
	userPoolSize       = 8
)

var botTypes = []string{domain.BotStreamlit, domain.BotSlack}

var queryPool = []string{
	"what are your opening hours?",
	"how do I reset my password?",
	"where can I find the pricing page?",
	"talk to a human",
	"what is ralphbot?",
	"cancel my subscription",
}

// querySkew maps the per-day interaction index to a queryPool entry; the
// first two queries occur twice as often as the rest.
var querySkew = [interactionsPerDay]int{0, 0, 1, 1, 2, 3}

var responsePool = []string{
	"Sure, here is what I found.",
	"Let me look that up for you.",
	"I've pulled up the relevant page.",
	"Connecting you with the right resource.",
}

// Store holds the synthetic dataset. Interactions are generated once and
// never mutated; bot statuses accept heartbeats so the write path keeps
// working while degraded.
type Store struct {
	generatedAt  time.Time
	interactions []domain.Interaction

	mu       sync.RWMutex
	statuses map[string]domain.BotStatus
}

func NewStore() *Store {
	return NewStoreAt(time.Now().UTC())
}

// NewStoreAt pins the generation instant. The dataset shape is fixed:
// daysOfData days of interactionsPerDay exchanges for each bot type, user
// identities drawn from a fixed pool, and roughly one in six exchanges left
// unmeasured so latency exclusion rules stay observable.
func NewStoreAt(now time.Time) *Store {
	s := &Store{
		generatedAt: now,
		statuses:    make(map[string]domain.BotStatus, len(botTypes)),
	}

	users := make([]string, userPoolSize)
	for i := range users {
		users[i] = uuid.NewMD5(uuid.NameSpaceOID, []byte(fmt.Sprintf("synthetic-user-%d", i))).String()
	}

	for day := 0; day < daysOfData; day++ {
		for b, bot := range botTypes {
			for i := 0; i < interactionsPerDay; i++ {
				ts := now.Add(-time.Duration(day)*24*time.Hour -
					time.Duration(i)*2*time.Hour -
					time.Duration(b)*30*time.Minute)

				// Skew query frequency so TopQueries has a real ranking.
				qi := querySkew[i]

				var latency int64
				if (day+i)%6 != 0 {
					latency = 800 + int64(150*i) + int64(40*day)
				}

				s.interactions = append(s.interactions, domain.Interaction{
					Timestamp:      ts,
					UserID:         users[(day+i*3+b)%userPoolSize],
					BotType:        bot,
					Query:          queryPool[qi],
					Response:       responsePool[(day+i)%len(responsePool)],
					ResponseTimeMs: latency,
				})
			}
		}
	}

	for _, bot := range botTypes {
		hb := now
		s.statuses[bot] = domain.BotStatus{
			BotType:        bot,
			LastHeartbeat:  &hb,
			ReportedStatus: "online",
		}
	}

	return s
}

var _ ports.DataSource = (*Store)(nil)

func matches(e domain.Interaction, w domain.Window, botType string) bool {
	if !w.Contains(e.Timestamp) {
		return false
	}
	return botType == "" || e.BotType == botType
}

func (s *Store) CountInteractions(_ context.Context, w domain.Window, botType string) (int64, error) {
	var n int64
	for _, e := range s.interactions {
		if matches(e, w, botType) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountUniqueUsers(_ context.Context, w domain.Window, botType string) (int64, error) {
	seen := make(map[string]struct{})
	for _, e := range s.interactions {
		if matches(e, w, botType) {
			seen[e.UserID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func (s *Store) AverageResponseTime(_ context.Context, w domain.Window, botType string) (float64, error) {
	var sum, n int64
	for _, e := range s.interactions {
		if matches(e, w, botType) && e.ResponseTimeMs > 0 {
			sum += e.ResponseTimeMs
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

func (s *Store) DailyActivity(_ context.Context, w domain.Window) ([]domain.DailyActivity, error) {
	type key struct {
		date string
		bot  string
	}
	counts := make(map[key]int64)
	for _, e := range s.interactions {
		if matches(e, w, "") {
			counts[key{e.Timestamp.UTC().Format("2006-01-02"), e.BotType}]++
		}
	}

	out := make([]domain.DailyActivity, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.DailyActivity{Date: k.date, BotType: k.bot, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].BotType < out[j].BotType
	})
	return out, nil
}

func (s *Store) TopQueries(_ context.Context, w domain.Window, limit int) ([]domain.QueryCount, error) {
	counts := make(map[string]int64)
	for _, e := range s.interactions {
		if matches(e, w, "") {
			counts[e.Query]++
		}
	}

	out := make([]domain.QueryCount, 0, len(counts))
	for q, n := range counts {
		out = append(out, domain.QueryCount{Query: q, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) RecentInteractions(_ context.Context, w domain.Window, botType string, limit int) ([]domain.Interaction, error) {
	var out []domain.Interaction
	for _, e := range s.interactions {
		if matches(e, w, botType) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ResponseTimeSamples(_ context.Context, w domain.Window, botType string) ([]int64, error) {
	var out []int64
	for _, e := range s.interactions {
		if matches(e, w, botType) && e.ResponseTimeMs > 0 {
			out = append(out, e.ResponseTimeMs)
		}
	}
	return out, nil
}

func (s *Store) BotStatus(_ context.Context, botType string) (*domain.BotStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.statuses[botType]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

// UpsertHeartbeat keeps heartbeat ingestion working while degraded.
// Last write wins, matching the real store's upsert.
func (s *Store) UpsertHeartbeat(_ context.Context, botType string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hb := at
	s.statuses[botType] = domain.BotStatus{
		BotType:        botType,
		LastHeartbeat:  &hb,
		ReportedStatus: "online",
	}
	return nil
}
