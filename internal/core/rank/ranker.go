package rank

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/supportloop/triage/internal/core/model"
	"github.com/supportloop/triage/internal/llm"
)

// Ranker scores candidate tickets against a query by cosine similarity
// of their embeddings. Ranking is a pure function of its inputs and the
// embedder: a failed embedding degrades to the zero vector (score 0)
// instead of surfacing an error.
type Ranker struct {
	embedder llm.EmbedderClient
}

func NewRanker(embedder llm.EmbedderClient) *Ranker {
	return &Ranker{embedder: embedder}
}

// Rank returns the topK tickets most similar to the query, in descending
// score order. Equal scores keep their original input order. Fewer than
// topK tickets are returned when the candidate set is smaller.
func (r *Ranker) Rank(ctx context.Context, query string, candidates []model.Ticket, topK int) []model.ScoredTicket {
	queryVec := r.embed(ctx, query)

	scored := make([]model.ScoredTicket, 0, len(candidates))
	for _, t := range candidates {
		scored = append(scored, model.ScoredTicket{
			Score:  CosineSimilarity(queryVec, r.embed(ctx, t.Content)),
			Ticket: t,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

func (r *Ranker) embed(ctx context.Context, text string) []float32 {
	if r.embedder == nil {
		return nil
	}
	vec, err := r.embedder.Embed(ctx, text)
	if err != nil {
		log.Printf("Embedding failed, falling back to zero vector: %v", err)
		return nil
	}
	return vec
}

// CosineSimilarity returns the directional alignment of two vectors:
// dot product over the product of Euclidean norms. If either vector has
// zero magnitude the result is exactly 0, never a division error.
// Vectors of different lengths are compared over their common prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, x := range a {
		magA += float64(x) * float64(x)
	}
	for _, x := range b {
		magB += float64(x) * float64(x)
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
