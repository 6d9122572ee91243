package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pricepulse/internal/models/db_models"
	"pricepulse/internal/repositories"
)

// In-memory fakes for the repository interfaces. Transactions are a
// pass-through; the services under test only care about call semantics.

type fakeTxManager struct{}

func (fakeTxManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (r *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) IncrementReputation(_ context.Context, id uuid.UUID, delta int) error {
	r.users[id].Reputation += delta
	return nil
}

func (r *fakeUserRepo) IncrementReportCount(_ context.Context, id uuid.UUID) error {
	r.users[id].ReportCount++
	return nil
}

func (r *fakeUserRepo) IncrementVerifiedReportCount(_ context.Context, id uuid.UUID) error {
	r.users[id].VerifiedReportCount++
	return nil
}

func (r *fakeUserRepo) MarkOnboardingCompleted(_ context.Context, id uuid.UUID) error {
	r.users[id].OnboardingCompleted = true
	return nil
}

type fakeReportRepo struct {
	reports map[uuid.UUID]*db_models.PriceReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*db_models.PriceReport)}
}

func (r *fakeReportRepo) Create(_ context.Context, report *db_models.PriceReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now().Unix()
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.PriceReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) HasRecentDuplicate(_ context.Context, userID, itemID, marketID uuid.UUID, since time.Time) (bool, error) {
	for _, report := range r.reports {
		if report.UserID != nil && *report.UserID == userID &&
			report.ItemID == itemID && report.MarketID == marketID &&
			report.CreatedAt >= since.Unix() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReportRepo) MarkVerified(_ context.Context, id, verifierID uuid.UUID, at time.Time) (bool, error) {
	report, ok := r.reports[id]
	if !ok || report.Status != db_models.ReportStatusPending {
		return false, nil
	}
	ts := at.Unix()
	report.Status = db_models.ReportStatusVerified
	report.VerifiedBy = &verifierID
	report.VerifiedAt = &ts
	return true, nil
}

func (r *fakeReportRepo) MarkRejected(_ context.Context, id uuid.UUID, reason string) (bool, error) {
	report, ok := r.reports[id]
	if !ok || report.Status != db_models.ReportStatusPending {
		return false, nil
	}
	report.Status = db_models.ReportStatusRejected
	report.RejectedReason = reason
	return true, nil
}

func (r *fakeReportRepo) List(_ context.Context, filter repositories.ReportFilter, page, pageSize int) ([]db_models.PriceReport, error) {
	var out []db_models.PriceReport
	for _, report := range r.reports {
		if filter.Status != "" && report.Status != filter.Status {
			continue
		}
		out = append(out, *report)
	}
	return out, nil
}

type fakeVoteRepo struct {
	votes   []*db_models.ReportVote
	reports *fakeReportRepo
}

func (r *fakeVoteRepo) FindByReportAndUser(_ context.Context, reportID, userID uuid.UUID) (*db_models.ReportVote, error) {
	for _, v := range r.votes {
		if v.ReportID == reportID && v.UserID == userID {
			copied := *v
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeVoteRepo) Insert(_ context.Context, vote *db_models.ReportVote) error {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	r.votes = append(r.votes, vote)
	return nil
}

func (r *fakeVoteRepo) SetHelpful(_ context.Context, voteID uuid.UUID, isHelpful bool) error {
	for _, v := range r.votes {
		if v.ID == voteID {
			v.IsHelpful = isHelpful
		}
	}
	return nil
}

func (r *fakeVoteRepo) CountHelpful(_ context.Context, reportID uuid.UUID) (int64, error) {
	var n int64
	for _, v := range r.votes {
		if v.ReportID == reportID && v.IsHelpful {
			n++
		}
	}
	return n, nil
}

func (r *fakeVoteRepo) CountHelpfulReceived(_ context.Context, authorID uuid.UUID) (int64, error) {
	var n int64
	for _, v := range r.votes {
		if !v.IsHelpful {
			continue
		}
		report, ok := r.reports.reports[v.ReportID]
		if ok && report.UserID != nil && *report.UserID == authorID {
			n++
		}
	}
	return n, nil
}

type fakeBadgeRepo struct {
	badges     map[string]*db_models.Badge
	userBadges []db_models.UserBadge
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{badges: make(map[string]*db_models.Badge)}
}

func (r *fakeBadgeRepo) GetOrCreate(_ context.Context, name, description, icon string) (*db_models.Badge, error) {
	if badge, ok := r.badges[name]; ok {
		return badge, nil
	}
	badge := &db_models.Badge{Name: name, Description: description, Icon: icon}
	badge.ID = uuid.New()
	r.badges[name] = badge
	return badge, nil
}

func (r *fakeBadgeRepo) ListUserBadges(_ context.Context, userID uuid.UUID) ([]db_models.UserBadge, error) {
	var out []db_models.UserBadge
	for _, ub := range r.userBadges {
		if ub.UserID == userID {
			for _, badge := range r.badges {
				if badge.ID == ub.BadgeID {
					ub.Badge = *badge
				}
			}
			out = append(out, ub)
		}
	}
	return out, nil
}

func (r *fakeBadgeRepo) InsertUserBadge(_ context.Context, userBadge *db_models.UserBadge) error {
	if userBadge.ID == uuid.Nil {
		userBadge.ID = uuid.New()
	}
	r.userBadges = append(r.userBadges, *userBadge)
	return nil
}

type fakeReputationRepo struct {
	events []db_models.ReputationEvent
}

func (r *fakeReputationRepo) InsertEvent(_ context.Context, event *db_models.ReputationEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeReputationRepo) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]db_models.ReputationEvent, error) {
	var out []db_models.ReputationEvent
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []db_models.Notification
}

func (r *fakeNotificationRepo) Insert(_ context.Context, n *db_models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, notif := range r.notifications {
		if notif.UserID == userID && !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) (bool, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id && r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].IsRead {
			r.notifications[i].IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) byType(userID uuid.UUID, nType string) []db_models.Notification {
	var out []db_models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID && n.Type == nType {
			out = append(out, n)
		}
	}
	return out
}

type fakeCatalogRepo struct {
	items   map[uuid.UUID]*db_models.Item
	markets map[uuid.UUID]*db_models.Market
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		items:   make(map[uuid.UUID]*db_models.Item),
		markets: make(map[uuid.UUID]*db_models.Market),
	}
}

func (r *fakeCatalogRepo) ListRegions(_ context.Context) ([]db_models.Region, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) FindMarketByID(_ context.Context, id uuid.UUID) (*db_models.Market, error) {
	m, ok := r.markets[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (r *fakeCatalogRepo) ListMarkets(_ context.Context, regionID *uuid.UUID, page, pageSize int) ([]db_models.Market, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) FindItemByID(_ context.Context, id uuid.UUID) (*db_models.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (r *fakeCatalogRepo) ListItems(_ context.Context, search string, page, pageSize int) ([]db_models.Item, error) {
	return nil, nil
}

type fakeAuditRepo struct {
	entries []db_models.AuditLog
}

func (r *fakeAuditRepo) Insert(_ context.Context, entry *db_models.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

// testEnv wires the real services over the fakes.
type testEnv struct {
	users         *fakeUserRepo
	reports       *fakeReportRepo
	votes         *fakeVoteRepo
	badges        *fakeBadgeRepo
	events        *fakeReputationRepo
	notifications *fakeNotificationRepo
	catalog       *fakeCatalogRepo
	audits        *fakeAuditRepo

	reputationService ReputationServiceInterface
	reportService     ReportServiceInterface
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	reports := newFakeReportRepo()
	votes := &fakeVoteRepo{reports: reports}
	badges := newFakeBadgeRepo()
	events := &fakeReputationRepo{}
	notifications := &fakeNotificationRepo{}
	catalog := newFakeCatalogRepo()
	audits := &fakeAuditRepo{}

	notificationService := NewNotificationService(notifications)
	reputationService := NewReputationService(users, events, badges, votes, notificationService, zap.NewNop())
	reportService := NewReportService(
		reports, votes, users, catalog, audits,
		reputationService, notificationService, fakeTxManager{}, zap.NewNop())

	return &testEnv{
		users:             users,
		reports:           reports,
		votes:             votes,
		badges:            badges,
		events:            events,
		notifications:     notifications,
		catalog:           catalog,
		audits:            audits,
		reputationService: reputationService,
		reportService:     reportService,
	}
}

func (e *testEnv) addUser(reputation, reportCount, verifiedCount int) *db_models.User {
	user := &db_models.User{
		DisplayName:         "shopper",
		Email:               uuid.NewString() + "@example.com",
		Role:                db_models.RoleUser,
		Reputation:          reputation,
		ReportCount:         reportCount,
		VerifiedReportCount: verifiedCount,
	}
	_ = e.users.Insert(context.Background(), user)
	return user
}

func (e *testEnv) addCatalog() (*db_models.Item, *db_models.Market) {
	item := &db_models.Item{Name: "Maize flour 2kg", Category: "staples", Unit: "bag"}
	item.ID = uuid.New()
	e.catalog.items[item.ID] = item

	market := &db_models.Market{Name: "Central Market", RegionID: uuid.New()}
	market.ID = uuid.New()
	e.catalog.markets[market.ID] = market

	return item, market
}

func (e *testEnv) earnedBadgeNames(userID uuid.UUID) map[string]bool {
	out := make(map[string]bool)
	earned, _ := e.badges.ListUserBadges(context.Background(), userID)
	for _, ub := range earned {
		out[ub.Badge.Name] = true
	}
	return out
}
