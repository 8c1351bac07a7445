package debate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"truthguard/internal/credibility"
	"truthguard/internal/provider"
)

// Fallback citations shown when a side's search produced nothing, so no
// argument is ever displayed without sources.
var (
	fallbackProSources = []SourceRef{
		{Title: "Reuters Fact Check", URL: "https://www.reuters.com/fact-check/"},
		{Title: "WHO — News & Updates", URL: "https://www.who.int/news/"},
	}
	fallbackConSources = []SourceRef{
		{Title: "AP Fact Check", URL: "https://apnews.com/hub/ap-fact-check"},
		{Title: "Snopes — Fact Checking", URL: "https://www.snopes.com/"},
		{Title: "PolitiFact", URL: "https://www.politifact.com/"},
	}
)

// Pipeline runs the claim debate. Providers are injected once at
// construction; no call site branches on mock vs real.
type Pipeline struct {
	text      provider.TextGenerator
	search    provider.SearchProvider
	factcheck provider.FactCheckProvider
}

func NewPipeline(text provider.TextGenerator, search provider.SearchProvider, factcheck provider.FactCheckProvider) *Pipeline {
	return &Pipeline{text: text, search: search, factcheck: factcheck}
}

// Run executes CLASSIFY_AND_SEARCH, SCORE, ARGUE, and JUDGE in order.
// Searches that return nothing degrade the run, they do not fail it; a
// transport failure on the classifier, either agent, or the judge is
// terminal and propagates.
func (p *Pipeline) Run(ctx context.Context, claimText string) (*Result, error) {
	// Only the headline line feeds the searches, so a pasted article body
	// or URL dump does not pollute the queries.
	query := firstLine(claimText, 200)
	log.Printf("debate: starting pipeline for claim %.80q", query)

	// Classification and the five evidence probes fan out together. Slots
	// are indexed so completion order cannot reorder results.
	var (
		wg          sync.WaitGroup
		searches    [4][]provider.SearchResult
		reviews     []provider.ClaimReview
		claimType   string
		classifyErr error
	)
	searchQueries := [4]string{
		"evidence supports: " + query,
		"evidence against debunks: " + query,
		"site:snopes.com OR site:politifact.com OR site:factcheck.org " + query,
		query + " verified confirmed report",
	}
	wg.Add(6)
	for i := range searchQueries {
		go func(i int) {
			defer wg.Done()
			// The corroboration probe checks recent reporting, so it
			// queries the news index rather than the general web.
			if i == 3 {
				searches[i] = p.search.SearchNews(ctx, searchQueries[i], 5)
				return
			}
			searches[i] = p.search.Search(ctx, searchQueries[i], 5)
		}(i)
	}
	go func() {
		defer wg.Done()
		reviews = p.factcheck.Lookup(ctx, query, 5)
	}()
	go func() {
		defer wg.Done()
		raw, err := p.text.Generate(ctx, fmt.Sprintf(classifierPrompt, query), provider.TierFlash)
		if err != nil {
			classifyErr = err
			return
		}
		claimType = NormalizeClaimType(raw)
	}()
	wg.Wait()
	if classifyErr != nil {
		return nil, fmt.Errorf("debate: classify claim: %w", classifyErr)
	}
	if claimType == "" {
		claimType = TypeGeneral
	}
	log.Printf("debate: claim type %s", claimType)

	proEvidence := scoreResults(searches[0])
	conEvidence := scoreResults(searches[1])
	fcEvidence := scoreResults(searches[2])
	corroboration := scoreResults(searches[3])

	proAvg := credibility.AvgScore(scoresOf(proEvidence))
	conAvg := credibility.AvgScore(scoresOf(append(append([]EvidenceItem{}, conEvidence...), fcEvidence...)))

	// ARGUE: both agents in parallel, each seeing only its own evidence.
	proPromptText := fmt.Sprintf(proPrompt, query, formatEvidence(proEvidence))
	conPromptText := fmt.Sprintf(conPrompt, query, formatEvidence(append(append([]EvidenceItem{}, conEvidence...), fcEvidence...)))

	var (
		agentWG        sync.WaitGroup
		proRaw, conRaw string
		proErr, conErr error
	)
	agentWG.Add(2)
	go func() {
		defer agentWG.Done()
		proRaw, proErr = p.text.Generate(ctx, proPromptText, provider.TierPro)
	}()
	go func() {
		defer agentWG.Done()
		conRaw, conErr = p.text.Generate(ctx, conPromptText, provider.TierPro)
	}()
	agentWG.Wait()
	if proErr != nil {
		return nil, fmt.Errorf("debate: supporting agent: %w", proErr)
	}
	if conErr != nil {
		return nil, fmt.Errorf("debate: opposing agent: %w", conErr)
	}

	pro := buildArgument(proRaw, proEvidence, proAvg, fallbackProSources)
	con := buildArgument(conRaw, conEvidence, conAvg, fallbackConSources)

	// JUDGE: terminal call, errors propagate.
	judgeRaw, err := p.text.Generate(ctx, fmt.Sprintf(judgePrompt,
		query, claimType,
		proAvg, pro.QualityLabel,
		pro.Text,
		conAvg, con.QualityLabel,
		con.Text,
		formatReviews(reviews),
		formatEvidence(corroboration),
	), provider.TierPro)
	if err != nil {
		return nil, fmt.Errorf("debate: judge: %w", err)
	}
	judgment := parseJudge(judgeRaw)

	degraded := len(proEvidence) == 0 && len(conEvidence) == 0 && len(fcEvidence) == 0 && len(reviews) == 0
	if degraded && judgment.Confidence > 35 {
		// No live evidence reached either agent, so the verdict rests on
		// model priors alone. Cap the reported confidence.
		judgment.Confidence = 35
	}

	log.Printf("debate: complete verdict=%s confidence=%d", judgment.Verdict, judgment.Confidence)

	sources := append(append([]SourceRef{}, pro.Sources...), con.Sources...)
	if len(sources) > 6 {
		sources = sources[:6]
	}
	return &Result{
		ClaimText:  query,
		ClaimType:  claimType,
		Pro:        pro,
		Con:        con,
		Judgment:   judgment,
		Sources:    sources,
		FactChecks: reviews,
		Degraded:   degraded,
	}, nil
}

func buildArgument(raw string, evidence []EvidenceItem, avg float64, fallback []SourceRef) Argument {
	text, points, quality := parseArgument(raw)
	sources := extractSources(evidence)
	if len(sources) == 0 {
		sources = fallback
	}
	if quality == "" {
		quality = credibility.QualityLabel(avg)
	}
	return Argument{
		Text:         text,
		Points:       points,
		Sources:      sources,
		QualityLabel: quality,
		AvgScore:     avg,
	}
}

func scoreResults(results []provider.SearchResult) []EvidenceItem {
	items := make([]EvidenceItem, 0, len(results))
	for _, r := range results {
		a := credibility.Assess(r.URL)
		items = append(items, EvidenceItem{
			Title:            r.Title,
			URL:              r.URL,
			Snippet:          r.Snippet,
			CredibilityScore: a.Score,
			Tier:             a.Tier,
			TierLabel:        a.Name,
			Stars:            a.Stars,
		})
	}
	return items
}

func scoresOf(items []EvidenceItem) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = it.CredibilityScore
	}
	return out
}

func extractSources(evidence []EvidenceItem) []SourceRef {
	var out []SourceRef
	for _, e := range evidence {
		if len(out) == 3 {
			break
		}
		title := e.Title
		if title == "" {
			title = truncate(e.Snippet, 60)
		}
		if title == "" {
			continue
		}
		out = append(out, SourceRef{Title: title, URL: e.URL})
	}
	return out
}

func formatEvidence(items []EvidenceItem) string {
	if len(items) == 0 {
		return "No search results available."
	}
	var b strings.Builder
	for i, it := range items {
		if i == 5 {
			break
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%d] %s %s (%s, credibility %.2f)\n    URL: %s\n    Excerpt: %s",
			i+1, it.Title, it.Stars, it.TierLabel, it.CredibilityScore, it.URL, it.Snippet)
	}
	return b.String()
}

func formatReviews(reviews []provider.ClaimReview) string {
	if len(reviews) == 0 {
		return "No third-party fact-checks found."
	}
	var b strings.Builder
	for i, r := range reviews {
		if i == 5 {
			break
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d] %s rated %q: %s (%s)", i+1, r.Publisher, r.Rating, r.Title, r.URL)
	}
	return b.String()
}

func firstLine(s string, maxLen int) string {
	line := strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
	return truncate(line, maxLen)
}
