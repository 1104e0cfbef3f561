package usecases

import (
	"context"

	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/domain/repositories"
	"rugcare.backend/pkg/utils"
)

// Fallback presentation for actions without an entry
const (
	DefaultAuditColor = "gray"
	DefaultAuditIcon  = "activity"
)

type auditPresentation struct {
	label string
	color string
	icon  string
}

var auditActions = map[string]auditPresentation{
	entities.AuditActionPaymentConfirmed: {"Payment Confirmed", "green", "credit-card"},
	"payment_failed":                     {"Payment Failed", "red", "x-circle"},
	"payment_refunded":                   {"Payment Refunded", "orange", "rotate-ccw"},
	"job_created":                        {"Job Created", "blue", "briefcase"},
	"job_updated":                        {"Job Updated", "blue", "edit"},
	"job_completed":                      {"Job Completed", "green", "check-circle"},
	"job_deleted":                        {"Job Deleted", "red", "trash-2"},
	"inspection_created":                 {"Inspection Added", "indigo", "search"},
	"estimate_sent":                      {"Estimate Sent", "purple", "send"},
	"estimate_approved":                  {"Estimate Approved", "emerald", "thumbs-up"},
	"client_portal_viewed":               {"Client Portal Viewed", "cyan", "eye"},
	"invoice_sent":                       {"Invoice Sent", "purple", "file-text"},
	"payout_requested":                   {"Payout Requested", "amber", "dollar-sign"},
	"settings_updated":                   {"Settings Updated", "slate", "settings"},
}

var auditEntities = map[string]string{
	entities.AuditEntityPayment: "Payment",
	"job":                       "Job",
	"inspection":                "Inspection",
	"estimate":                  "Estimate",
	"client":                    "Client",
	"payout":                    "Payout",
	"business_profile":          "Business Profile",
}

// DescribeAuditAction returns display label, color and icon for an action.
// Unknown actions use the raw action as label with the default color and icon.
func DescribeAuditAction(action string) (label, color, icon string) {
	if p, ok := auditActions[action]; ok {
		return p.label, p.color, p.icon
	}
	return action, DefaultAuditColor, DefaultAuditIcon
}

// DescribeAuditEntity returns the display label for an entity type, defaulting to the raw value
func DescribeAuditEntity(entityType string) string {
	if label, ok := auditEntities[entityType]; ok {
		return label
	}
	return entityType
}

// AuditLogUsecase lists a business user's audit trail
type AuditLogUsecase struct {
	auditRepo repositories.AuditLogRepository
}

// NewAuditLogUsecase creates a new audit log usecase
func NewAuditLogUsecase(auditRepo repositories.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

// ListAuditLogs returns one page of the user's audit entries, decorated for display
func (u *AuditLogUsecase) ListAuditLogs(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLogView, utils.PaginationMeta, error) {
	if userID == "" {
		return nil, utils.PaginationMeta{}, domainerrors.Unauthorized("missing user")
	}

	entries, total, err := u.auditRepo.ListByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.InternalError(err)
	}

	views := make([]*entities.AuditLogView, 0, len(entries))
	for _, entry := range entries {
		label, color, icon := DescribeAuditAction(entry.Action)
		views = append(views, &entities.AuditLogView{
			AuditLog:    entry,
			Label:       label,
			Color:       color,
			Icon:        icon,
			EntityLabel: DescribeAuditEntity(entry.EntityType),
		})
	}
	return views, utils.CalculateMeta(total, pagination.Page, pagination.Limit), nil
}
