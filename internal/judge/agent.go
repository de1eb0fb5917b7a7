package judge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/tribunal/internal/tickets"
	"github.com/JaimeStill/tribunal/pkg/formatting"
)

type judgeResponse struct {
	Satisfaction *string `json:"satisfaction"`
	Sentiment    *string `json:"sentiment"`
	Rationale    string  `json:"rationale"`
}

type agentJudge struct {
	agent   gaconfig.AgentConfig
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a model-backed judge. Each assessment runs under its own
// timeout so one stalled call cannot block the rest of a batch.
func New(cfg gaconfig.AgentConfig, timeout time.Duration, logger *slog.Logger) System {
	return &agentJudge{
		agent:   cfg,
		timeout: timeout,
		logger:  logger.With("system", "judge"),
	}
}

func (j *agentJudge) Judge(ctx context.Context, ticket *tickets.Ticket) Judgment {
	callCtx := ctx
	if j.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	a, err := agent.New(&j.agent)
	if err != nil {
		j.logger.Error("create agent failed", "ticket_id", ticket.ID, "error", err)
		return Unusable(fmt.Sprintf("create agent: %v", err))
	}

	resp, err := a.Chat(callCtx, ComposePrompt(ticket))
	if err != nil {
		j.logger.Error("judge call failed", "ticket_id", ticket.ID, "error", err)
		return Unusable(fmt.Sprintf("judge call: %v", err))
	}

	content := resp.Content()

	parsed, err := formatting.Parse[judgeResponse](content)
	if err != nil {
		// Keep the raw content; satisfaction stays indeterminate.
		j.logger.Warn("judge response unparseable", "ticket_id", ticket.ID)
		return Unusable(content)
	}

	return Judgment{
		Satisfaction: parsed.Satisfaction,
		Sentiment:    parsed.Sentiment,
		Rationale:    parsed.Rationale,
	}
}
