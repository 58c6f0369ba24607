package analysis

import (
	"newscred/internal/domain"
)

// SourceRegistry is an ordered, read-only table of trusted outlets. It is
// built once at startup and shared across concurrent runs without locking.
type SourceRegistry struct {
	sources     []domain.TrustedSource
	totalWeight float64
}

// NewSourceRegistry copies the given sources into an immutable registry.
func NewSourceRegistry(sources []domain.TrustedSource) *SourceRegistry {
	reg := &SourceRegistry{sources: make([]domain.TrustedSource, len(sources))}
	copy(reg.sources, sources)
	for _, s := range reg.sources {
		reg.totalWeight += s.Weight
	}
	return reg
}

// DefaultRegistry returns the built-in trusted-source table.
func DefaultRegistry() *SourceRegistry {
	return NewSourceRegistry(defaultSources)
}

// Sources exposes the registry entries in registration order.
func (r *SourceRegistry) Sources() []domain.TrustedSource {
	return r.sources
}

// TotalWeight is the normalization denominator for coverage scoring.
func (r *SourceRegistry) TotalWeight() float64 {
	return r.totalWeight
}

// Len reports the number of registered sources.
func (r *SourceRegistry) Len() int {
	return len(r.sources)
}

var defaultSources = []domain.TrustedSource{
	// Global tier
	{ID: "bbc", Name: "BBC News", SearchURL: "https://www.bbc.com/search?q={query}", Weight: 0.95, Region: "global"},
	{ID: "reuters", Name: "Reuters", SearchURL: "https://www.reuters.com/site-search/?query={query}", Weight: 0.95, Region: "global"},
	{ID: "ap_news", Name: "Associated Press", SearchURL: "https://apnews.com/search?q={query}", Weight: 0.94, Region: "global"},
	{ID: "cnn", Name: "CNN", SearchURL: "https://edition.cnn.com/search?q={query}", Weight: 0.85, Region: "global"},
	{ID: "guardian", Name: "The Guardian", SearchURL: "https://www.theguardian.com/search?q={query}", Weight: 0.90, Region: "global"},

	// Indian national tier
	{ID: "times_of_india", Name: "Times of India", SearchURL: "https://timesofindia.indiatimes.com/topic/{query}", Weight: 0.85, Region: "india"},
	{ID: "hindustan_times", Name: "Hindustan Times", SearchURL: "https://www.hindustantimes.com/search?q={query}", Weight: 0.88, Region: "india"},
	{ID: "indian_express", Name: "Indian Express", SearchURL: "https://indianexpress.com/search/{query}/", Weight: 0.90, Region: "india"},
	{ID: "ndtv", Name: "NDTV", SearchURL: "https://www.ndtv.com/search?searchtext={query}", Weight: 0.87, Region: "india"},
	{ID: "the_hindu", Name: "The Hindu", SearchURL: "https://www.thehindu.com/search/?q={query}", Weight: 0.92, Region: "india"},
	{ID: "india_today", Name: "India Today", SearchURL: "https://www.indiatoday.in/search.html?searchtext={query}", Weight: 0.83, Region: "india"},
	{ID: "news18", Name: "News18", SearchURL: "https://www.news18.com/search/?q={query}", Weight: 0.82, Region: "india"},

	// Odisha regional tier
	{ID: "odisha_tv", Name: "OdishaTV", SearchURL: "https://odishatv.in/search?q={query}", Weight: 0.85, Region: "odisha"},
	{ID: "orissa_post", Name: "Orissa Post", SearchURL: "https://www.orissapost.com/?s={query}", Weight: 0.80, Region: "odisha"},
	{ID: "sambad", Name: "Sambad English", SearchURL: "https://sambadenglish.com/?s={query}", Weight: 0.78, Region: "odisha"},
	{ID: "kalinga_tv", Name: "Kalinga TV", SearchURL: "https://kalingatv.com/?s={query}", Weight: 0.75, Region: "odisha"},
	{ID: "prameya_news", Name: "Prameya News", SearchURL: "https://www.prameyanews.com/?s={query}", Weight: 0.77, Region: "odisha"},
	{ID: "argus_news", Name: "Argus News", SearchURL: "https://argusnews.in/?s={query}", Weight: 0.76, Region: "odisha"},
}
