package jobo

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// AutoApplyService exposes the application-automation endpoints. Session
// state lives entirely server-side; every call returns the last-seen state.
type AutoApplyService struct {
	client *Client
}

// StartSession opens an auto-apply session for a job's apply URL and
// returns the detected provider and the form fields to answer.
func (s *AutoApplyService) StartSession(ctx context.Context, applyURL string) (*AutoApplySession, error) {
	if applyURL == "" {
		return nil, newValidationError("apply URL is required", nil)
	}

	var session AutoApplySession
	err := s.client.do(ctx, http.MethodPost, "/api/auto-apply/start", nil, startSessionRequest{ApplyURL: applyURL}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SetAnswers submits field answers for an active session and returns the
// updated session state, including the terminal flag once the submission
// completes.
func (s *AutoApplyService) SetAnswers(ctx context.Context, sessionID uuid.UUID, answers []FieldAnswer) (*AutoApplySession, error) {
	body := setAnswersRequest{
		SessionID: sessionID,
		Answers:   answers,
	}

	var session AutoApplySession
	if err := s.client.do(ctx, http.MethodPost, "/api/auto-apply/set-answers", nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// EndSession ends an auto-apply session. It returns true when the session
// was ended and false, with no error, when the session does not exist.
func (s *AutoApplyService) EndSession(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	resp, err := s.client.request(ctx, http.MethodDelete, "/api/auto-apply/sessions/"+sessionID.String(), nil, nil)
	if err != nil {
		return false, err
	}

	switch {
	case resp.statusCode >= 200 && resp.statusCode <= 299:
		return true, nil
	case resp.statusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, classifyStatus(resp.statusCode, resp.body, resp.header)
	}
}
