package heatmap

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxEvents caps the in-memory hotspot list so user flags cannot grow it
// without bound.
const maxEvents = 400

// FeedInterval is the cadence of the fallback ticker pushed to stream
// subscribers between real flag events.
const FeedInterval = 3 * time.Second

// Assessor fills the scoring fields of an event. Injected so the service
// stays decoupled from the scoring package.
type Assessor func(Event) Event

// RegionAssessor fills the scoring fields of a region summary.
type RegionAssessor func(RegionStats) RegionStats

// Service owns the live hotspot state behind the heatmap endpoints: the
// seeded baseline events, user-submitted flags, and the stream fan-out.
type Service struct {
	assess       Assessor
	assessRegion RegionAssessor

	mu         sync.RWMutex
	events     []Event
	regions    []RegionStats
	narratives []NarrativeItem

	subMu sync.Mutex
	subs  map[chan StreamEvent]struct{}

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewService seeds the baseline dataset. Nil assessors leave events
// unscored, which only tests should want.
func NewService(assess Assessor, assessRegion RegionAssessor) *Service {
	if assess == nil {
		assess = func(e Event) Event { return e }
	}
	if assessRegion == nil {
		assessRegion = func(r RegionStats) RegionStats { return r }
	}
	return &Service{
		assess:       assess,
		assessRegion: assessRegion,
		events:       seedEvents(),
		regions:      seedRegions(),
		narratives:   seedNarratives(),
		subs:         make(map[chan StreamEvent]struct{}),
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Snapshot assembles the dashboard payload, optionally filtered to one
// category ("" or "all" means everything). Every event and region is
// stability-scored on the way out; the stored copies stay raw.
func (s *Service) Snapshot(category string) Snapshot {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	regions := make([]RegionStats, len(s.regions))
	copy(regions, s.regions)
	narratives := make([]NarrativeItem, len(s.narratives))
	copy(narratives, s.narratives)
	s.mu.RUnlock()

	if category != "" && !strings.EqualFold(category, "all") {
		events = filterEvents(events, category)
		narratives = filterNarratives(narratives, category)
	}

	total := 0
	for _, r := range regions {
		total += r.Events
	}

	for i := range events {
		events[i] = s.assess(events[i])
	}
	for i := range regions {
		regions[i] = s.assessRegion(regions[i])
	}

	return Snapshot{
		Events:      events,
		Regions:     regions,
		Narratives:  narratives,
		TotalEvents: total,
	}
}

// Flag records a user-submitted suspected-AI flag as a fresh hotspot and
// notifies stream subscribers so the marker shows up immediately.
func (s *Service) Flag(req FlagRequest) FlagResponse {
	var cx, cy float64
	label := prettyPlatformLabel(req.Platform)
	if req.Location != nil {
		cx, cy = latLngToPercent(req.Location.Lat, req.Location.Lng)
	} else {
		cx, cy = 50.0, 50.0
		label += " (unknown location)"
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	ev := Event{
		ID:        uuid.NewString(),
		Label:     label,
		Count:     1,
		Cx:        round2(cx),
		Cy:        round2(cy),
		Severity:  severityFromConfidence(req.Confidence),
		Category:  category,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.events = append([]Event{ev}, s.events...)
	if len(s.events) > maxEvents {
		s.events = s.events[:maxEvents]
	}
	s.mu.Unlock()

	s.broadcast(StreamEvent{
		Type:      "event",
		Message:   fmt.Sprintf("User flag · %s · %s", ev.Category, ev.Label),
		City:      ev.Label,
		Category:  ev.Category,
		Severity:  ev.Severity,
		Delta:     1,
		Timestamp: ev.Timestamp.Format(time.RFC3339),
	})

	return FlagResponse{OK: true, ID: ev.ID, Event: ev}
}

// Subscribe registers a stream listener. The channel closes when ctx ends;
// slow listeners drop frames rather than block the publisher.
func (s *Service) Subscribe(ctx context.Context) <-chan StreamEvent {
	ch := make(chan StreamEvent, 16)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, ch)
		s.subMu.Unlock()
		close(ch)
	}()
	return ch
}

func (s *Service) broadcast(ev StreamEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// TickerFrame returns the idx-th frame of the cycling demo feed, used to
// keep stream connections lively between real flags.
func (s *Service) TickerFrame(idx int) StreamEvent {
	item := feedItems[idx%len(feedItems)]
	s.rndMu.Lock()
	delta := 1 + s.rnd.Intn(8)
	s.rndMu.Unlock()
	return StreamEvent{
		Type:      "event",
		Message:   fmt.Sprintf("%s · %s · %s", item.verb, item.category, item.city),
		City:      item.city,
		Category:  item.category,
		Severity:  item.severity,
		Delta:     delta,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func filterEvents(events []Event, category string) []Event {
	out := events[:0]
	for _, e := range events {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

func filterNarratives(items []NarrativeItem, category string) []NarrativeItem {
	out := items[:0]
	for _, n := range items {
		if strings.EqualFold(n.Category, category) {
			n.Rank = len(out) + 1
			out = append(out, n)
		}
	}
	return out
}

// latLngToPercent projects a coordinate onto equirectangular map
// percentages in [0,100].
func latLngToPercent(lat, lng float64) (cx, cy float64) {
	cx = (lng + 180.0) / 360.0 * 100.0
	cy = (90.0 - lat) / 180.0 * 100.0
	return clampPct(cx), clampPct(cy)
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func severityFromConfidence(confidence *int) string {
	if confidence == nil {
		return SeverityMedium
	}
	switch {
	case *confidence >= 80:
		return SeverityHigh
	case *confidence >= 50:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func prettyPlatformLabel(platform string) string {
	name := strings.ToLower(strings.TrimSpace(platform))
	if name == "" {
		name = "web"
	}
	switch name {
	case "x", "x.com", "twitter", "twitter.com":
		return "X / Twitter"
	case "youtube", "youtube.com":
		return "YouTube"
	case "instagram", "instagram.com":
		return "Instagram"
	case "tiktok", "tiktok.com":
		return "TikTok"
	case "telegram", "telegram.org":
		return "Telegram"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
