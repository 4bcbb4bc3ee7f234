package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"soccerscout/app/config"
	"soccerscout/app/service/matcher"
	"soccerscout/app/service/report"
	"soccerscout/app/service/session"

	"github.com/samber/do"
)

// externalCallTimeout bounds a single turn's search or report generation.
// A timed-out call is an internal failure and routes to the error state.
const externalCallTimeout = 90 * time.Second

// Service is the per-user conversation state machine: it maps one inbound
// message to exactly one outbound message, driving
// search → disambiguation → confirmation → report.
type Service struct {
	cfg        *config.Config
	sessions   *session.Store
	searcher   matcher.Searcher
	assembler  report.Assembler
	renderer   Renderer
	classifier IntentClassifier
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	var renderer Renderer = TemplateRenderer{}
	var classifier IntentClassifier = RuleClassifier{}

	if cfg.OpenAI.Intent.Enabled() {
		renderer = NewLLMRenderer(cfg.OpenAI.Intent)
		classifier = NewLLMClassifier(cfg.OpenAI.Intent)
	}

	return &Service{
		cfg:        cfg,
		sessions:   do.MustInvoke[*session.Store](di),
		searcher:   do.MustInvoke[*matcher.Service](di),
		assembler:  do.MustInvoke[*report.Service](di),
		renderer:   renderer,
		classifier: classifier,
	}, nil
}

// NewWithDeps wires explicit collaborators, used by tests and embedded hosts.
func NewWithDeps(
	sessions *session.Store,
	searcher matcher.Searcher,
	assembler report.Assembler,
	renderer Renderer,
	classifier IntentClassifier,
) *Service {
	return &Service{
		sessions:   sessions,
		searcher:   searcher,
		assembler:  assembler,
		renderer:   renderer,
		classifier: classifier,
	}
}

// HandleMessage is the entire inbound surface: one message in, one message out.
// The session lock is held for the whole turn, overlapping messages from the
// same user serialize here.
func (s *Service) HandleMessage(ctx context.Context, userID, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.renderer.Help(ctx)
	}

	sess := s.sessions.GetOrCreate(userID)
	sess.Lock()
	defer sess.Unlock()

	return s.step(ctx, userID, sess, text)
}

// ResetSession drops a user's conversation back to a fresh search.
func (s *Service) ResetSession(userID string) {
	s.sessions.Reset(userID)
}

// SessionState reports the current state without creating a session.
func (s *Service) SessionState(userID string) session.State {
	return s.sessions.Peek(userID)
}

func (s *Service) Welcome(ctx context.Context) string {
	return s.renderer.Welcome(ctx)
}

func (s *Service) Help(ctx context.Context) string {
	return s.renderer.Help(ctx)
}

func (s *Service) Status(ctx context.Context, userID string) string {
	return s.renderer.Status(ctx, s.sessions.Peek(userID))
}

func (s *Service) step(ctx context.Context, userID string, sess *session.Session, text string) string {
	switch sess.State {
	case session.Searching:
		return s.handleSearch(ctx, userID, sess, text)
	case session.ShowingResults:
		return s.handleSelection(ctx, userID, sess, text)
	case session.ConfirmingSelection:
		return s.handleConfirmation(ctx, userID, sess, text)
	case session.Completed:
		return s.handleCompleted(ctx, userID, sess, text)
	case session.Error:
		// An errored session behaves as if it had been reset.
		sess.Clear()
		return s.handleSearch(ctx, userID, sess, text)
	default:
		sess.Clear()
		return s.handleSearch(ctx, userID, sess, text)
	}
}

func (s *Service) handleSearch(ctx context.Context, userID string, sess *session.Session, text string) string {
	candidates, err := s.search(ctx, text)
	if err != nil {
		return s.fail(ctx, userID, sess, text, fmt.Errorf("searcher.Search: %w", err))
	}

	switch len(candidates) {
	case 0:
		sess.Clear()
		sess.State = session.Error
		return s.renderer.NotFound(ctx, text)
	case 1:
		// Exactly one match skips the list and goes straight to confirmation.
		sess.Candidates = candidates
		sess.Select(candidates[0])
		return s.renderer.Confirm(ctx, candidates[0])
	default:
		sess.Candidates = candidates
		sess.Selected = nil
		sess.State = session.ShowingResults
		return s.renderer.Candidates(ctx, candidates)
	}
}

func (s *Service) handleSelection(ctx context.Context, userID string, sess *session.Session, text string) string {
	if number, err := strconv.Atoi(text); err == nil {
		if number < 1 || number > len(sess.Candidates) {
			return s.renderer.OutOfRange(ctx, len(sess.Candidates))
		}

		sess.Select(sess.Candidates[number-1])
		return s.renderer.Confirm(ctx, *sess.Selected)
	}

	// First case-insensitive substring match wins, in list order.
	lowered := strings.ToLower(text)
	for _, candidate := range sess.Candidates {
		if strings.Contains(strings.ToLower(candidate.DisplayName), lowered) {
			sess.Select(candidate)
			return s.renderer.Confirm(ctx, candidate)
		}
	}

	return s.renderer.PickPrompt(ctx, len(sess.Candidates))
}

func (s *Service) handleConfirmation(ctx context.Context, userID string, sess *session.Session, text string) string {
	switch {
	case isAffirmative(text):
		if sess.Selected == nil {
			return s.fail(ctx, userID, sess, text, fmt.Errorf("confirmation with no selection"))
		}

		message, err := s.deliverReport(ctx, sess)
		if err != nil {
			return s.fail(ctx, userID, sess, text, err)
		}

		sess.State = session.Completed
		return message

	case isNegative(text):
		// Back to the retained candidate list. A rejected single match
		// re-offers only that one player, recovery is a fresh search.
		sess.Selected = nil
		sess.Report = nil
		sess.State = session.ShowingResults
		return s.renderer.Candidates(ctx, sess.Candidates)

	default:
		return s.renderer.ReconfirmPrompt(ctx)
	}
}

func (s *Service) handleCompleted(ctx context.Context, userID string, sess *session.Session, text string) string {
	if sess.Report != nil && s.classifier.Classify(ctx, text) == IntentFollowUp {
		answer, err := s.followUp(ctx, sess.Report, text)
		if err != nil {
			return s.fail(ctx, userID, sess, text, fmt.Errorf("assembler.FollowUp: %w", err))
		}

		return answer
	}

	// Any non-question starts over, within the same turn.
	sess.Clear()
	return s.handleSearch(ctx, userID, sess, text)
}

func (s *Service) deliverReport(ctx context.Context, sess *session.Session) (string, error) {
	data := sess.Report

	if data == nil || data.Candidate.ID != sess.Selected.ID {
		callCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
		defer cancel()

		generated, err := s.assembler.Generate(callCtx, *sess.Selected)
		if err != nil {
			return "", fmt.Errorf("assembler.Generate: %w", err)
		}

		data = generated
	}

	body, err := s.assembler.Render(ctx, data)
	if err != nil {
		return "", fmt.Errorf("assembler.Render: %w", err)
	}

	sess.Report = data

	return s.renderer.Report(ctx, *sess.Selected, body), nil
}

func (s *Service) followUp(ctx context.Context, data *report.Data, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	return s.assembler.FollowUp(ctx, data, question)
}

func (s *Service) search(ctx context.Context, query string) ([]matcher.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	return s.searcher.Search(ctx, query)
}

// fail converts any internal failure into the error state plus a generic
// user-facing message. Nothing propagates to the host.
func (s *Service) fail(ctx context.Context, userID string, sess *session.Session, input string, err error) string {
	slog.Error("Conversation turn failed",
		"user_id", userID,
		"state", sess.State.String(),
		"input", input,
		"error", err)

	sess.Clear()
	sess.State = session.Error

	return s.renderer.Failure(ctx)
}

func isAffirmative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "y", "confirm", "sure", "ok":
		return true
	}
	return false
}

func isNegative(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "no", "n", "cancel", "other", "different":
		return true
	}
	return false
}
