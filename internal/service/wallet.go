package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/logger"
	"arenahub-backend/internal/repository"

	"github.com/google/uuid"
)

type walletService struct {
	walletRepo  repository.WalletRepository
	requestRepo repository.MoneyRequestRepository
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	notifier    NotificationService
	emailSvc    EmailService
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	requestRepo repository.MoneyRequestRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	emailSvc EmailService,
) WalletService {
	return &walletService{
		walletRepo:  walletRepo,
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		emailSvc:    emailSvc,
	}
}

// requireMember resolves team membership. Only a missing row becomes the
// authorization error; infrastructure failures surface as-is.
func (s *walletService) requireMember(ctx context.Context, teamID, userID int32) (*domain.TeamMember, error) {
	m, err := s.teamRepo.GetMember(ctx, teamID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorizedActor
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *walletService) GetBalance(ctx context.Context, teamID, actorID int32) (int64, error) {
	if _, err := s.requireMember(ctx, teamID, actorID); err != nil {
		return 0, err
	}
	return s.walletRepo.GetBalance(ctx, teamID)
}

func (s *walletService) ListTransactions(ctx context.Context, teamID, actorID int32) ([]domain.TeamTransaction, error) {
	if _, err := s.requireMember(ctx, teamID, actorID); err != nil {
		return nil, err
	}
	return s.walletRepo.ListTransactions(ctx, teamID)
}

func (s *walletService) CreateRequests(ctx context.Context, teamID, requesterID int32, memberIDs []int32, amountCents int64, reason string) ([]domain.MoneyRequest, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	requester, err := s.requireMember(ctx, teamID, requesterID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.CanRequestMoney() {
		return nil, domain.ErrUnauthorizedActor
	}

	// Dedupe and validate the whole target set before persisting anything.
	seen := make(map[int32]bool, len(memberIDs))
	targets := make([]int32, 0, len(memberIDs))
	for _, id := range memberIDs {
		if seen[id] || id == requesterID {
			continue
		}
		seen[id] = true
		if _, err := s.teamRepo.GetMember(ctx, teamID, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: user %d", domain.ErrUnknownMember, id)
			}
			return nil, err
		}
		targets = append(targets, id)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no members to request from", domain.ErrUnknownMember)
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	requests := make([]domain.MoneyRequest, 0, len(targets))
	for _, memberID := range targets {
		req := domain.MoneyRequest{
			TeamID:        teamID,
			RequesterID:   requesterID,
			RequestedFrom: memberID,
			AmountCents:   amountCents,
			Reason:        reason,
			Status:        domain.MoneyRequestStatusPending,
		}
		if err := s.requestRepo.Create(ctx, &req); err != nil {
			return nil, fmt.Errorf("create money request: %w", err)
		}
		requests = append(requests, req)

		s.notifier.Emit(ctx, memberID, domain.NotificationTypeWallet,
			"Contribution requested",
			fmt.Sprintf("%s asks you to contribute %d to the team wallet", team.Name, amountCents),
			fmt.Sprintf("/team-wallet/%d/requests/%d", teamID, req.ID))

		if member, err := s.userRepo.GetByID(ctx, memberID); err == nil {
			if err := s.emailSvc.SendMoneyRequestNotice(ctx, member.Email, member.Username, team.Name, amountCents, reason); err != nil {
				logger.Warn("money request email failed", "request_id", req.ID, "user_id", memberID, "error", err)
			}
		}
	}
	return requests, nil
}

func (s *walletService) Respond(ctx context.Context, requestID, actorID int32, action domain.RequestAction) (*domain.MoneyRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequestedFrom != actorID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	var updated *domain.MoneyRequest
	switch action {
	case domain.RequestActionApprove:
		// The repository runs the debit, the wallet credit, the ledger
		// append and the status flip as one transaction. A lost race or a
		// short balance leaves the request exactly as it was.
		updated, _, err = s.requestRepo.Approve(ctx, requestID, uuid.New().String(), now)
	case domain.RequestActionReject:
		updated, err = s.requestRepo.Resolve(ctx, requestID, domain.MoneyRequestStatusRejected, now)
	default:
		return nil, fmt.Errorf("unknown request action %q", action)
	}
	if err != nil {
		return nil, err
	}

	s.notifyResolved(ctx, updated)
	return updated, nil
}

func (s *walletService) Cancel(ctx context.Context, requestID, actorID int32) (*domain.MoneyRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != actorID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.requestRepo.Resolve(ctx, requestID, domain.MoneyRequestStatusCancelled, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, updated.RequestedFrom, domain.NotificationTypeWallet,
		"Contribution request cancelled",
		fmt.Sprintf("The request for %d was withdrawn by the team lead", updated.AmountCents),
		fmt.Sprintf("/team-wallet/%d/requests/%d", updated.TeamID, updated.ID))
	return updated, nil
}

func (s *walletService) ListPending(ctx context.Context, actorID int32) ([]domain.MoneyRequest, error) {
	return s.requestRepo.ListPendingFor(ctx, actorID)
}

func (s *walletService) ListTeamRequests(ctx context.Context, teamID, actorID int32) ([]domain.MoneyRequest, error) {
	if _, err := s.requireMember(ctx, teamID, actorID); err != nil {
		return nil, err
	}
	return s.requestRepo.ListByTeam(ctx, teamID)
}

// notifyResolved tells the requester how the member responded. Delivery is
// best-effort; the ledger mutation has already committed.
func (s *walletService) notifyResolved(ctx context.Context, req *domain.MoneyRequest) {
	member, err := s.userRepo.GetByID(ctx, req.RequestedFrom)
	if err != nil {
		logger.Warn("resolved-request lookup failed", "request_id", req.ID, "error", err)
		return
	}

	approved := req.Status == domain.MoneyRequestStatusApproved
	title := "Contribution approved"
	body := fmt.Sprintf("%s contributed %d to the team wallet", member.Username, req.AmountCents)
	typ := domain.NotificationTypeTransaction
	if !approved {
		title = "Contribution rejected"
		body = fmt.Sprintf("%s declined the request for %d", member.Username, req.AmountCents)
		typ = domain.NotificationTypeWallet
	}
	s.notifier.Emit(ctx, req.RequesterID, typ, title, body,
		fmt.Sprintf("/team-wallet/%d/requests/%d", req.TeamID, req.ID))

	if requester, err := s.userRepo.GetByID(ctx, req.RequesterID); err == nil {
		if err := s.emailSvc.SendRequestResolvedNotice(ctx, requester.Email, requester.Username, member.Username, approved, req.AmountCents); err != nil {
			logger.Warn("resolved-request email failed", "request_id", req.ID, "error", err)
		}
	}
}
