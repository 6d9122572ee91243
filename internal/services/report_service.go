package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"pricepulse/internal/metrics"
	"pricepulse/internal/models/db_models"
	"pricepulse/internal/models/request_models"
	"pricepulse/internal/models/response_models"
	"pricepulse/internal/repositories"
	"pricepulse/pkg/utils"
)

const (
	deltaReportVerified = 15
	deltaVerifierReward = 5
	deltaHelpfulVote    = 2

	reasonReportVerified = "Report verified by the community"
	reasonVerifierReward = "Verified a community report"
	reasonHelpfulVote    = "Report marked helpful"
	reasonVoteRetracted  = "Helpful vote retracted"
)

type ReportServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, req request_models.SubmitReportRequest) (*response_models.ReportResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response_models.ReportResponse, error)
	List(ctx context.Context, query request_models.ListReportsQuery) ([]response_models.ReportResponse, error)
	Verify(ctx context.Context, reportID, verifierID uuid.UUID) (*response_models.ReportResponse, error)
	Reject(ctx context.Context, reportID, moderatorID uuid.UUID, reason string) (*response_models.ReportResponse, error)
	Vote(ctx context.Context, reportID, voterID uuid.UUID) (*response_models.VoteResponse, error)
	Unvote(ctx context.Context, reportID, voterID uuid.UUID) (*response_models.VoteResponse, error)
}

type ReportService struct {
	reportRepo          repositories.ReportRepository
	voteRepo            repositories.VoteRepository
	userRepo            repositories.UserRepository
	catalogRepo         repositories.CatalogRepository
	auditRepo           repositories.AuditRepository
	reputationService   ReputationServiceInterface
	notificationService NotificationServiceInterface
	txManager           repositories.TxManager
	logger              *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	voteRepo repositories.VoteRepository,
	userRepo repositories.UserRepository,
	catalogRepo repositories.CatalogRepository,
	auditRepo repositories.AuditRepository,
	reputationService ReputationServiceInterface,
	notificationService NotificationServiceInterface,
	txManager repositories.TxManager,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepo:          reportRepo,
		voteRepo:            voteRepo,
		userRepo:            userRepo,
		catalogRepo:         catalogRepo,
		auditRepo:           auditRepo,
		reputationService:   reputationService,
		notificationService: notificationService,
		txManager:           txManager,
		logger:              logger,
	}
}

func (s *ReportService) Submit(ctx context.Context, userID uuid.UUID, req request_models.SubmitReportRequest) (*response_models.ReportResponse, error) {

	item, err := s.catalogRepo.FindItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	if req.VariantID != nil {
		found := false
		for _, v := range item.Variants {
			if v.ID == *req.VariantID {
				found = true
				break
			}
		}
		if !found {
			return nil, utils.ErrVariantNotFound
		}
	}

	market, err := s.catalogRepo.FindMarketByID(ctx, req.MarketID)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, utils.ErrMarketNotFound
	}

	// Same user, same item, same market, same clock hour: reject. There is
	// no unique constraint backing this, so two simultaneous submissions can
	// still both land; accepted risk.
	hourStart := time.Now().Truncate(time.Hour)
	dup, err := s.reportRepo.HasRecentDuplicate(ctx, userID, req.ItemID, req.MarketID, hourStart)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, utils.ErrDuplicateReport
	}

	report := &db_models.PriceReport{
		ItemID:    req.ItemID,
		VariantID: req.VariantID,
		MarketID:  req.MarketID,
		RegionID:  market.RegionID,
		UserID:    &userID,
		Price:     req.Price,
		Note:      req.Note,
		Status:    db_models.ReportStatusPending,
	}

	err = s.txManager.InTx(ctx, func(ctx context.Context) error {
		if err := s.reportRepo.Create(ctx, report); err != nil {
			return err
		}
		if err := s.userRepo.IncrementReportCount(ctx, userID); err != nil {
			return err
		}
		return s.reputationService.CheckAndAwardBadges(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsSubmitted.Inc()
	s.logger.Info("price report submitted",
		zap.String("report_id", report.ID.String()),
		zap.String("user_id", userID.String()))

	return response_models.NewReportResponse(report, 0), nil
}

func (s *ReportService) GetByID(ctx context.Context, id uuid.UUID) (*response_models.ReportResponse, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, utils.ErrReportNotFound
	}

	count, err := s.voteRepo.CountHelpful(ctx, id)
	if err != nil {
		return nil, err
	}
	return response_models.NewReportResponse(report, count), nil
}

func (s *ReportService) List(ctx context.Context, query request_models.ListReportsQuery) ([]response_models.ReportResponse, error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.ReportFilter{Status: query.Status}
	if query.ItemID != "" {
		id, err := uuid.Parse(query.ItemID)
		if err != nil {
			return nil, utils.ErrInvalidPage
		}
		filter.ItemID = &id
	}
	if query.MarketID != "" {
		id, err := uuid.Parse(query.MarketID)
		if err != nil {
			return nil, utils.ErrInvalidPage
		}
		filter.MarketID = &id
	}
	if query.RegionID != "" {
		id, err := uuid.Parse(query.RegionID)
		if err != nil {
			return nil, utils.ErrInvalidPage
		}
		filter.RegionID = &id
	}

	reports, err := s.reportRepo.List(ctx, filter, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.ReportResponse, 0, len(reports))
	for i := range reports {
		count, err := s.voteRepo.CountHelpful(ctx, reports[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *response_models.NewReportResponse(&reports[i], count))
	}
	return out, nil
}

// Verify transitions pending -> verified exactly once. The status flip, both
// reputation awards, the counter bump, badge checks, the reporter
// notification and the audit row commit or roll back together.
func (s *ReportService) Verify(ctx context.Context, reportID, verifierID uuid.UUID) (*response_models.ReportResponse, error) {

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, utils.ErrReportNotFound
	}

	if report.UserID != nil && *report.UserID == verifierID {
		return nil, utils.ErrSelfVerification
	}
	if report.Status != db_models.ReportStatusPending {
		return nil, utils.ErrReportAlreadyResolved
	}

	item, err := s.catalogRepo.FindItemByID(ctx, report.ItemID)
	if err != nil {
		return nil, err
	}
	market, err := s.catalogRepo.FindMarketByID(ctx, report.MarketID)
	if err != nil {
		return nil, err
	}
	itemName, marketName := "an item", "a market"
	if item != nil {
		itemName = item.Name
	}
	if market != nil {
		marketName = market.Name
	}

	err = s.txManager.InTx(ctx, func(ctx context.Context) error {
		// The WHERE status = 'pending' clause arbitrates concurrent verify
		// attempts; the loser sees zero affected rows.
		ok, err := s.reportRepo.MarkVerified(ctx, reportID, verifierID, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return utils.ErrReportAlreadyResolved
		}

		if report.UserID != nil {
			reporterID := *report.UserID
			if err := s.reputationService.Award(ctx, reporterID, deltaReportVerified, reasonReportVerified); err != nil {
				return err
			}
			if err := s.userRepo.IncrementVerifiedReportCount(ctx, reporterID); err != nil {
				return err
			}
			if err := s.reputationService.CheckAndAwardBadges(ctx, reporterID); err != nil {
				return err
			}
			if err := s.notificationService.NotifyReportVerified(ctx, reporterID, reportID, itemName, marketName); err != nil {
				return err
			}
		}

		if err := s.reputationService.Award(ctx, verifierID, deltaVerifierReward, reasonVerifierReward); err != nil {
			return err
		}
		if err := s.reputationService.CheckAndAwardBadges(ctx, verifierID); err != nil {
			return err
		}

		return s.auditRepo.Insert(ctx, &db_models.AuditLog{
			ActorID:    verifierID,
			Action:     db_models.AuditActionReportVerified,
			EntityType: "price_report",
			EntityID:   reportID,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsVerified.Inc()
	s.logger.Info("price report verified",
		zap.String("report_id", reportID.String()),
		zap.String("verifier_id", verifierID.String()))

	return s.GetByID(ctx, reportID)
}

func (s *ReportService) Reject(ctx context.Context, reportID, moderatorID uuid.UUID, reason string) (*response_models.ReportResponse, error) {

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, utils.ErrReportNotFound
	}
	if report.Status != db_models.ReportStatusPending {
		return nil, utils.ErrReportAlreadyResolved
	}

	err = s.txManager.InTx(ctx, func(ctx context.Context) error {
		ok, err := s.reportRepo.MarkRejected(ctx, reportID, reason)
		if err != nil {
			return err
		}
		if !ok {
			return utils.ErrReportAlreadyResolved
		}

		meta, _ := json.Marshal(map[string]string{"reason": reason})
		return s.auditRepo.Insert(ctx, &db_models.AuditLog{
			ActorID:    moderatorID,
			Action:     db_models.AuditActionReportRejected,
			EntityType: "price_report",
			EntityID:   reportID,
			Metadata:   datatypes.JSON(meta),
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsRejected.Inc()
	s.logger.Info("price report rejected",
		zap.String("report_id", reportID.String()),
		zap.String("moderator_id", moderatorID.String()))

	return s.GetByID(ctx, reportID)
}

// Vote upserts the caller's helpful vote. A vote row is flipped in place,
// never duplicated; re-voting an already-helpful report is a no-op.
func (s *ReportService) Vote(ctx context.Context, reportID, voterID uuid.UUID) (*response_models.VoteResponse, error) {

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, utils.ErrReportNotFound
	}

	vote, err := s.voteRepo.FindByReportAndUser(ctx, reportID, voterID)
	if err != nil {
		return nil, err
	}

	fresh := vote == nil || !vote.IsHelpful
	if fresh {
		err = s.txManager.InTx(ctx, func(ctx context.Context) error {
			if vote == nil {
				newVote := &db_models.ReportVote{
					ReportID:  reportID,
					UserID:    voterID,
					IsHelpful: true,
				}
				if err := s.voteRepo.Insert(ctx, newVote); err != nil {
					return err
				}
			} else {
				if err := s.voteRepo.SetHelpful(ctx, vote.ID, true); err != nil {
					return err
				}
			}

			if report.UserID != nil && *report.UserID != voterID {
				authorID := *report.UserID
				if err := s.reputationService.Award(ctx, authorID, deltaHelpfulVote, reasonHelpfulVote); err != nil {
					return err
				}
				if err := s.reputationService.CheckAndAwardBadges(ctx, authorID); err != nil {
					return err
				}
				if err := s.notificationService.NotifyReportUpvoted(ctx, authorID, reportID); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		metrics.VotesCast.Inc()
	}

	count, err := s.voteRepo.CountHelpful(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return &response_models.VoteResponse{ReportID: reportID, HelpfulCount: count}, nil
}

// Unvote retracts a helpful vote. Retracting a never-cast or already
// retracted vote mutates nothing.
func (s *ReportService) Unvote(ctx context.Context, reportID, voterID uuid.UUID) (*response_models.VoteResponse, error) {

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, utils.ErrReportNotFound
	}

	vote, err := s.voteRepo.FindByReportAndUser(ctx, reportID, voterID)
	if err != nil {
		return nil, err
	}

	if vote != nil && vote.IsHelpful {
		err = s.txManager.InTx(ctx, func(ctx context.Context) error {
			if err := s.voteRepo.SetHelpful(ctx, vote.ID, false); err != nil {
				return err
			}
			if report.UserID != nil && *report.UserID != voterID {
				// Symmetric deduction, no badge re-check.
				return s.reputationService.Award(ctx, *report.UserID, -deltaHelpfulVote, reasonVoteRetracted)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	count, err := s.voteRepo.CountHelpful(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return &response_models.VoteResponse{ReportID: reportID, HelpfulCount: count}, nil
}
