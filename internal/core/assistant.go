package core

import (
	"context"

	"github.com/supportloop/triage/internal/core/model"
	"github.com/supportloop/triage/internal/core/rank"
	"github.com/supportloop/triage/internal/core/respond"
	"github.com/supportloop/triage/internal/store"
)

// Assistant runs the full triage cycle: embed the query, rank the
// session's tickets, hand the top hits to the responder. Each call is
// one synchronous pass; there is no background work.
type Assistant struct {
	store     *store.TicketStore
	ranker    *rank.Ranker
	responder *respond.Responder
}

func NewAssistant(s *store.TicketStore, r *rank.Ranker, rp *respond.Responder) *Assistant {
	return &Assistant{
		store:     s,
		ranker:    r,
		responder: rp,
	}
}

func (a *Assistant) Analyze(ctx context.Context, query string, topK int) model.AnalysisResult {
	relevant := a.ranker.Rank(ctx, query, a.store.List(), topK)

	contextDocs := make([]string, 0, len(relevant))
	for _, st := range relevant {
		contextDocs = append(contextDocs, st.Ticket.Content)
	}

	return model.AnalysisResult{
		Query:    query,
		Context:  contextDocs,
		Response: a.responder.Respond(ctx, query, contextDocs),
	}
}
