package dialog

import (
	"context"
	"fmt"
	"strings"

	"soccerscout/app/service/matcher"
	"soccerscout/app/service/session"
)

// Renderer produces every outbound message of the conversation. Keeping it
// behind an interface lets tests assert on transitions without depending on
// nondeterministic text generation.
type Renderer interface {
	Welcome(ctx context.Context) string
	Help(ctx context.Context) string
	NotFound(ctx context.Context, query string) string
	Failure(ctx context.Context) string
	Candidates(ctx context.Context, candidates []matcher.Candidate) string
	Confirm(ctx context.Context, candidate matcher.Candidate) string
	OutOfRange(ctx context.Context, total int) string
	PickPrompt(ctx context.Context, total int) string
	ReconfirmPrompt(ctx context.Context) string
	Report(ctx context.Context, candidate matcher.Candidate, body string) string
	Status(ctx context.Context, state session.State) string
}

var _ Renderer = (*TemplateRenderer)(nil)

// TemplateRenderer is the deterministic variant.
type TemplateRenderer struct{}

func (TemplateRenderer) Welcome(context.Context) string {
	return "Welcome to Soccer Scout. Type a player's name to get a performance report."
}

func (TemplateRenderer) Help(context.Context) string {
	return "Send a player's name to search. When several players match, reply with a " +
		"number to pick one, then confirm with yes/no. After a report you can ask " +
		"follow-up questions or search for another player."
}

func (TemplateRenderer) NotFound(_ context.Context, query string) string {
	return fmt.Sprintf("No players found for %q. Try checking the spelling or use a different name.", query)
}

func (TemplateRenderer) Failure(context.Context) string {
	return "Something went wrong on our side. Please try again with a new search."
}

func (TemplateRenderer) Candidates(_ context.Context, candidates []matcher.Candidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d players:\n", len(candidates))
	for i, candidate := range candidates {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, candidate.DisplayName, candidate.Affiliation)
	}
	b.WriteString("Reply with a number or a name to pick one.")

	return b.String()
}

func (TemplateRenderer) Confirm(_ context.Context, candidate matcher.Candidate) string {
	return fmt.Sprintf("Did you mean %s (%s)? Reply yes or no.",
		candidate.DisplayName, candidate.Affiliation)
}

func (TemplateRenderer) OutOfRange(_ context.Context, total int) string {
	return fmt.Sprintf("That number is out of range, valid choices are 1-%d.", total)
}

func (TemplateRenderer) PickPrompt(_ context.Context, total int) string {
	return fmt.Sprintf("No exact match among the candidates, pick a number between 1 and %d.", total)
}

func (TemplateRenderer) ReconfirmPrompt(context.Context) string {
	return "Please answer yes or no."
}

func (TemplateRenderer) Report(_ context.Context, candidate matcher.Candidate, body string) string {
	return fmt.Sprintf("Here is the report for %s:\n\n%s", candidate.DisplayName, body)
}

func (TemplateRenderer) Status(_ context.Context, state session.State) string {
	switch state {
	case session.Searching:
		return "Waiting for a player name."
	case session.ShowingResults:
		return "Waiting for you to pick one of the listed players."
	case session.ConfirmingSelection:
		return "Waiting for a yes/no confirmation."
	case session.Completed:
		return "Report delivered. Ask a follow-up question or search for another player."
	case session.Error:
		return "The last search failed. Send a new player name to start over."
	default:
		return "Unknown state."
	}
}
