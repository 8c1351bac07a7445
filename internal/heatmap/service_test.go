package heatmap

import (
	"context"
	"strings"
	"testing"
	"time"
)

func scoringAssessor(ev Event) Event {
	score := 42
	ev.RealityScore = &score
	ev.RiskLevel = "HIGH"
	return ev
}

func TestSnapshot_AssessesWithoutMutatingState(t *testing.T) {
	s := NewService(scoringAssessor, nil)

	snap := s.Snapshot("")
	if len(snap.Events) != 13 || len(snap.Regions) != 6 || len(snap.Narratives) != 6 {
		t.Fatalf("seed sizes: %d events, %d regions, %d narratives",
			len(snap.Events), len(snap.Regions), len(snap.Narratives))
	}
	if snap.TotalEvents != 847+623+1204+391+278+512 {
		t.Fatalf("total = %d", snap.TotalEvents)
	}
	for _, e := range snap.Events {
		if e.RealityScore == nil {
			t.Fatalf("event %q not assessed", e.Label)
		}
	}

	// The stored copies must stay raw so re-assessment never compounds.
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.RealityScore != nil {
			t.Fatalf("stored event %q was mutated", e.Label)
		}
	}
}

func TestSnapshot_CategoryFilterReranksNarratives(t *testing.T) {
	s := NewService(nil, nil)
	snap := s.Snapshot("Health")

	for _, e := range snap.Events {
		if e.Category != "Health" {
			t.Fatalf("unexpected category %q", e.Category)
		}
	}
	if len(snap.Narratives) != 2 {
		t.Fatalf("health narratives = %d", len(snap.Narratives))
	}
	for i, n := range snap.Narratives {
		if n.Rank != i+1 {
			t.Fatalf("narrative %d has rank %d", i, n.Rank)
		}
	}
	// Region totals are not category-scoped.
	if snap.TotalEvents != 3855 {
		t.Fatalf("total = %d", snap.TotalEvents)
	}
}

func TestFlag_CreatesHotspotAtFront(t *testing.T) {
	s := NewService(nil, nil)
	conf := 92
	resp := s.Flag(FlagRequest{
		SourceURL:  "https://x.com/post/1",
		Platform:   "twitter",
		Category:   "Politics",
		Confidence: &conf,
		Location:   &GeoPoint{Lat: 0, Lng: 0},
	})

	if !resp.OK || resp.ID == "" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Event.Label != "X / Twitter" {
		t.Fatalf("label = %q", resp.Event.Label)
	}
	if resp.Event.Severity != SeverityHigh {
		t.Fatalf("severity = %q", resp.Event.Severity)
	}
	if resp.Event.Cx != 50 || resp.Event.Cy != 50 {
		t.Fatalf("projection: cx=%v cy=%v", resp.Event.Cx, resp.Event.Cy)
	}

	snap := s.Snapshot("")
	if snap.Events[0].ID != resp.ID {
		t.Fatal("flag event not at front of snapshot")
	}
}

func TestFlag_UnknownLocationAndPlatformDefaults(t *testing.T) {
	s := NewService(nil, nil)
	resp := s.Flag(FlagRequest{Platform: "someforum"})

	if !strings.Contains(resp.Event.Label, "(unknown location)") {
		t.Fatalf("label = %q", resp.Event.Label)
	}
	if !strings.HasPrefix(resp.Event.Label, "Someforum") {
		t.Fatalf("label = %q", resp.Event.Label)
	}
	if resp.Event.Severity != SeverityMedium {
		t.Fatalf("severity without confidence = %q", resp.Event.Severity)
	}
	if resp.Event.Category != "General" {
		t.Fatalf("category = %q", resp.Event.Category)
	}
}

func TestFlag_EvictsBeyondCap(t *testing.T) {
	s := NewService(nil, nil)
	for i := 0; i < maxEvents+20; i++ {
		s.Flag(FlagRequest{Platform: "web", Category: "Health"})
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.events) != maxEvents {
		t.Fatalf("events = %d, want %d", len(s.events), maxEvents)
	}
}

func TestSubscribe_ReceivesFlagBroadcast(t *testing.T) {
	s := NewService(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx)
	s.Flag(FlagRequest{Platform: "tiktok", Category: "Health"})

	select {
	case ev := <-ch:
		if ev.Type != "event" || ev.City != "TikTok" || ev.Delta != 1 {
			t.Fatalf("frame = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no stream frame received")
	}

	cancel()
	for range ch {
	}
}

func TestTickerFrame_CyclesFeed(t *testing.T) {
	s := NewService(nil, nil)

	first := s.TickerFrame(0)
	if first.City != "Jakarta" || first.Category != "Health" {
		t.Fatalf("frame 0 = %+v", first)
	}
	if first.Delta < 1 || first.Delta > 8 {
		t.Fatalf("delta %d outside 1..8", first.Delta)
	}
	wrapped := s.TickerFrame(len(feedItems))
	if wrapped.City != first.City {
		t.Fatalf("feed did not wrap: %q", wrapped.City)
	}
	if !strings.Contains(s.TickerFrame(1).Message, "Spike alert · Politics · Washington DC") {
		t.Fatalf("message = %q", s.TickerFrame(1).Message)
	}
}

func TestLatLngToPercent(t *testing.T) {
	cx, cy := latLngToPercent(90, -180)
	if cx != 0 || cy != 0 {
		t.Fatalf("north-west corner: %v,%v", cx, cy)
	}
	cx, cy = latLngToPercent(-90, 180)
	if cx != 100 || cy != 100 {
		t.Fatalf("south-east corner: %v,%v", cx, cy)
	}
	cx, cy = latLngToPercent(51.5, -0.12)
	if cx < 49 || cx > 50 || cy < 21 || cy > 22 {
		t.Fatalf("london: %v,%v", cx, cy)
	}
}
