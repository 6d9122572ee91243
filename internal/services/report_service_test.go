package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"pricepulse/internal/models/db_models"
	"pricepulse/internal/models/request_models"
	"pricepulse/pkg/utils"
)

func submitReport(t *testing.T, env *testEnv, userID uuid.UUID, itemID, marketID uuid.UUID, price float64) uuid.UUID {
	t.Helper()
	resp, err := env.reportService.Submit(context.Background(), userID, request_models.SubmitReportRequest{
		ItemID:   itemID,
		MarketID: marketID,
		Price:    price,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return resp.ID
}

func TestSubmitCreatesPendingReport(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	resp, err := env.reportService.Submit(ctx, user.ID, request_models.SubmitReportRequest{
		ItemID:   item.ID,
		MarketID: market.ID,
		Price:    120.50,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if resp.Status != db_models.ReportStatusPending {
		t.Errorf("expected status pending, got %q", resp.Status)
	}
	if resp.RegionID != market.RegionID {
		t.Error("region not denormalized from market")
	}

	updated, _ := env.users.FindByID(ctx, user.ID)
	if updated.ReportCount != 1 {
		t.Errorf("expected report count 1, got %d", updated.ReportCount)
	}
	if !env.earnedBadgeNames(user.ID)["First Reporter"] {
		t.Error("First Reporter badge not awarded on first submission")
	}
	// Submitting alone earns no reputation.
	if len(env.events.events) != 0 {
		t.Errorf("expected no reputation events, got %d", len(env.events.events))
	}
}

func TestSubmitDuplicateSameHour(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(0, 0, 0)
	item, market := env.addCatalog()

	submitReport(t, env, user.ID, item.ID, market.ID, 100)

	_, err := env.reportService.Submit(context.Background(), user.ID, request_models.SubmitReportRequest{
		ItemID:   item.ID,
		MarketID: market.ID,
		Price:    105,
	})
	if !errors.Is(err, utils.ErrDuplicateReport) {
		t.Fatalf("expected ErrDuplicateReport, got %v", err)
	}

	// A different user is not affected by the guard.
	other := env.addUser(0, 0, 0)
	submitReport(t, env, other.ID, item.ID, market.ID, 99)
}

func TestSubmitUnknownCatalogRefs(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	_, err := env.reportService.Submit(ctx, user.ID, request_models.SubmitReportRequest{
		ItemID: uuid.New(), MarketID: market.ID, Price: 10,
	})
	if !errors.Is(err, utils.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}

	_, err = env.reportService.Submit(ctx, user.ID, request_models.SubmitReportRequest{
		ItemID: item.ID, MarketID: uuid.New(), Price: 10,
	})
	if !errors.Is(err, utils.ErrMarketNotFound) {
		t.Errorf("expected ErrMarketNotFound, got %v", err)
	}

	bogusVariant := uuid.New()
	_, err = env.reportService.Submit(ctx, user.ID, request_models.SubmitReportRequest{
		ItemID: item.ID, VariantID: &bogusVariant, MarketID: market.ID, Price: 10,
	})
	if !errors.Is(err, utils.ErrVariantNotFound) {
		t.Errorf("expected ErrVariantNotFound, got %v", err)
	}
}

func TestVerifyAwardsBothParties(t *testing.T) {
	env := newTestEnv()
	reporter := env.addUser(0, 0, 0)
	verifier := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, reporter.ID, item.ID, market.ID, 100)

	resp, err := env.reportService.Verify(ctx, reportID, verifier.ID)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.Status != db_models.ReportStatusVerified {
		t.Errorf("expected status verified, got %q", resp.Status)
	}

	updatedReporter, _ := env.users.FindByID(ctx, reporter.ID)
	if updatedReporter.Reputation != 15 {
		t.Errorf("expected reporter reputation 15, got %d", updatedReporter.Reputation)
	}
	if updatedReporter.VerifiedReportCount != 1 {
		t.Errorf("expected verified report count 1, got %d", updatedReporter.VerifiedReportCount)
	}

	updatedVerifier, _ := env.users.FindByID(ctx, verifier.ID)
	if updatedVerifier.Reputation != 5 {
		t.Errorf("expected verifier reputation 5, got %d", updatedVerifier.Reputation)
	}

	if got := env.notifications.byType(reporter.ID, db_models.NotificationReportVerified); len(got) != 1 {
		t.Errorf("expected 1 verified notification for reporter, got %d", len(got))
	}

	if len(env.audits.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(env.audits.entries))
	}
	if env.audits.entries[0].Action != db_models.AuditActionReportVerified {
		t.Errorf("unexpected audit action %q", env.audits.entries[0].Action)
	}
}

func TestVerifyTwiceConflicts(t *testing.T) {
	env := newTestEnv()
	reporter := env.addUser(0, 0, 0)
	verifier := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, reporter.ID, item.ID, market.ID, 100)

	if _, err := env.reportService.Verify(ctx, reportID, verifier.ID); err != nil {
		t.Fatalf("first Verify: %v", err)
	}

	_, err := env.reportService.Verify(ctx, reportID, env.addUser(0, 0, 0).ID)
	if !errors.Is(err, utils.ErrReportAlreadyResolved) {
		t.Fatalf("expected ErrReportAlreadyResolved, got %v", err)
	}

	// The loser must not have moved any counters.
	updatedReporter, _ := env.users.FindByID(ctx, reporter.ID)
	if updatedReporter.Reputation != 15 {
		t.Errorf("expected reporter reputation still 15, got %d", updatedReporter.Reputation)
	}
}

func TestVerifyOwnReportForbidden(t *testing.T) {
	env := newTestEnv()
	reporter := env.addUser(0, 0, 0)
	item, market := env.addCatalog()

	reportID := submitReport(t, env, reporter.ID, item.ID, market.ID, 100)

	_, err := env.reportService.Verify(context.Background(), reportID, reporter.ID)
	if !errors.Is(err, utils.ErrSelfVerification) {
		t.Fatalf("expected ErrSelfVerification, got %v", err)
	}
}

func TestRejectLeavesAuditTrail(t *testing.T) {
	env := newTestEnv()
	reporter := env.addUser(0, 0, 0)
	moderator := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, reporter.ID, item.ID, market.ID, 100)

	resp, err := env.reportService.Reject(ctx, reportID, moderator.ID, "implausible price")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if resp.Status != db_models.ReportStatusRejected {
		t.Errorf("expected status rejected, got %q", resp.Status)
	}

	// Rejection carries no reputation changes.
	if len(env.events.events) != 0 {
		t.Errorf("expected no reputation events, got %d", len(env.events.events))
	}
	if len(env.audits.entries) != 1 || env.audits.entries[0].Action != db_models.AuditActionReportRejected {
		t.Error("expected one rejected audit entry")
	}

	// Rejected reports cannot be verified afterwards.
	_, err = env.reportService.Verify(ctx, reportID, env.addUser(0, 0, 0).ID)
	if !errors.Is(err, utils.ErrReportAlreadyResolved) {
		t.Errorf("expected ErrReportAlreadyResolved, got %v", err)
	}
}

func TestVoteAwardsAuthorOnce(t *testing.T) {
	env := newTestEnv()
	author := env.addUser(0, 0, 0)
	voter := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, author.ID, item.ID, market.ID, 100)

	resp, err := env.reportService.Vote(ctx, reportID, voter.ID)
	if err != nil {
		t.Fatalf("Vote: %v", err)
	}
	if resp.HelpfulCount != 1 {
		t.Errorf("expected helpful count 1, got %d", resp.HelpfulCount)
	}

	// Voting again is a no-op: same count, no second award.
	resp, err = env.reportService.Vote(ctx, reportID, voter.ID)
	if err != nil {
		t.Fatalf("second Vote: %v", err)
	}
	if resp.HelpfulCount != 1 {
		t.Errorf("expected helpful count still 1, got %d", resp.HelpfulCount)
	}

	updatedAuthor, _ := env.users.FindByID(ctx, author.ID)
	if updatedAuthor.Reputation != 2 {
		t.Errorf("expected author reputation 2, got %d", updatedAuthor.Reputation)
	}
	if len(env.votes.votes) != 1 {
		t.Errorf("expected a single vote row, got %d", len(env.votes.votes))
	}
	if got := env.notifications.byType(author.ID, db_models.NotificationReportUpvoted); len(got) != 1 {
		t.Errorf("expected 1 upvote notification, got %d", len(got))
	}
}

func TestVoteOwnReportNoAward(t *testing.T) {
	env := newTestEnv()
	author := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, author.ID, item.ID, market.ID, 100)

	resp, err := env.reportService.Vote(ctx, reportID, author.ID)
	if err != nil {
		t.Fatalf("Vote: %v", err)
	}
	if resp.HelpfulCount != 1 {
		t.Errorf("expected helpful count 1, got %d", resp.HelpfulCount)
	}

	updatedAuthor, _ := env.users.FindByID(ctx, author.ID)
	if updatedAuthor.Reputation != 0 {
		t.Errorf("self votes must not award reputation, got %d", updatedAuthor.Reputation)
	}
}

func TestUnvoteRetractsAward(t *testing.T) {
	env := newTestEnv()
	author := env.addUser(0, 0, 0)
	voter := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, author.ID, item.ID, market.ID, 100)

	if _, err := env.reportService.Vote(ctx, reportID, voter.ID); err != nil {
		t.Fatalf("Vote: %v", err)
	}
	resp, err := env.reportService.Unvote(ctx, reportID, voter.ID)
	if err != nil {
		t.Fatalf("Unvote: %v", err)
	}
	if resp.HelpfulCount != 0 {
		t.Errorf("expected helpful count 0 after unvote, got %d", resp.HelpfulCount)
	}

	updatedAuthor, _ := env.users.FindByID(ctx, author.ID)
	if updatedAuthor.Reputation != 0 {
		t.Errorf("expected author reputation back to 0, got %d", updatedAuthor.Reputation)
	}
	// +2 then -2: two events, still one vote row.
	if len(env.events.events) != 2 {
		t.Errorf("expected 2 reputation events, got %d", len(env.events.events))
	}
	if len(env.votes.votes) != 1 {
		t.Errorf("expected a single vote row after flip, got %d", len(env.votes.votes))
	}

	// Re-voting flips the same row back and awards again.
	if _, err := env.reportService.Vote(ctx, reportID, voter.ID); err != nil {
		t.Fatalf("re-Vote: %v", err)
	}
	updatedAuthor, _ = env.users.FindByID(ctx, author.ID)
	if updatedAuthor.Reputation != 2 {
		t.Errorf("expected author reputation 2 after re-vote, got %d", updatedAuthor.Reputation)
	}
	if len(env.votes.votes) != 1 {
		t.Errorf("expected a single vote row after re-vote, got %d", len(env.votes.votes))
	}
}

func TestUnvoteNeverCastIsNoOp(t *testing.T) {
	env := newTestEnv()
	author := env.addUser(0, 0, 0)
	stranger := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, author.ID, item.ID, market.ID, 100)

	resp, err := env.reportService.Unvote(ctx, reportID, stranger.ID)
	if err != nil {
		t.Fatalf("Unvote: %v", err)
	}
	if resp.HelpfulCount != 0 {
		t.Errorf("expected helpful count 0, got %d", resp.HelpfulCount)
	}
	if len(env.events.events) != 0 {
		t.Errorf("retracting a never-cast vote must not touch reputation, got %d events", len(env.events.events))
	}
}

func TestVoteUnknownReport(t *testing.T) {
	env := newTestEnv()
	voter := env.addUser(0, 0, 0)

	_, err := env.reportService.Vote(context.Background(), uuid.New(), voter.ID)
	if !errors.Is(err, utils.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

// End-to-end walk through a report's life: submit, duplicate rejection,
// community verification, a helpful vote.
func TestReportLifecycle(t *testing.T) {
	env := newTestEnv()
	reporter := env.addUser(0, 0, 0)
	verifier := env.addUser(0, 0, 0)
	voter := env.addUser(0, 0, 0)
	item, market := env.addCatalog()
	ctx := context.Background()

	reportID := submitReport(t, env, reporter.ID, item.ID, market.ID, 89.99)

	if _, err := env.reportService.Submit(ctx, reporter.ID, request_models.SubmitReportRequest{
		ItemID: item.ID, MarketID: market.ID, Price: 91,
	}); !errors.Is(err, utils.ErrDuplicateReport) {
		t.Fatalf("expected ErrDuplicateReport, got %v", err)
	}

	if _, err := env.reportService.Verify(ctx, reportID, verifier.ID); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	resp, err := env.reportService.Vote(ctx, reportID, voter.ID)
	if err != nil {
		t.Fatalf("Vote: %v", err)
	}
	if resp.HelpfulCount != 1 {
		t.Errorf("expected helpful count 1, got %d", resp.HelpfulCount)
	}

	updatedReporter, _ := env.users.FindByID(ctx, reporter.ID)
	if updatedReporter.Reputation != 17 { // +15 verify, +2 helpful
		t.Errorf("expected reporter reputation 17, got %d", updatedReporter.Reputation)
	}
	updatedVerifier, _ := env.users.FindByID(ctx, verifier.ID)
	if updatedVerifier.Reputation != 5 {
		t.Errorf("expected verifier reputation 5, got %d", updatedVerifier.Reputation)
	}

	final, err := env.reportService.GetByID(ctx, reportID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if final.Status != db_models.ReportStatusVerified {
		t.Errorf("expected final status verified, got %q", final.Status)
	}
	if final.VerifiedBy == nil || *final.VerifiedBy != verifier.ID {
		t.Error("verified_by not recorded")
	}
}
