// Package notification builds and sends the monthly renewal reminders.
// Customers carry the Spanish month their service contract expires in;
// once a month the admins get a digest of who is due.
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"extinsia/internal/domain/customer"
	"extinsia/internal/domain/user"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/textutil"
)

// EmailSender abstracts the SMTP implementation in infrastructure/email.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type ReminderResult struct {
	Month      string `json:"mes"`
	Customers  int    `json:"clientes"`
	Recipients int    `json:"destinatarios"`
}

type ReminderService struct {
	customerRepo customer.Repository
	userRepo     user.Repository
	sender       EmailSender
	logger       logger.Interface
}

func NewReminderService(
	customerRepo customer.Repository,
	userRepo user.Repository,
	sender EmailSender,
	logger logger.Interface,
) *ReminderService {
	return &ReminderService{
		customerRepo: customerRepo,
		userRepo:     userRepo,
		sender:       sender,
		logger:       logger,
	}
}

// Run sends the renewal digest for the given Spanish month name to every
// admin account. An empty month means the month after the current one,
// which gives admins lead time to schedule visits.
func (s *ReminderService) Run(ctx context.Context, month string) (*ReminderResult, error) {
	if strings.TrimSpace(month) == "" {
		next := int(time.Now().Month())%12 + 1
		month = customer.MonthOf(next)
	} else {
		month = textutil.Title(month)
		if !customer.IsValidMonth(month) {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid renewal month %q", month))
		}
	}

	due, err := s.customerRepo.ListByRenewalMonth(ctx, month)
	if err != nil {
		s.logger.Errorw("failed to list customers", "error", err)
		return nil, errors.NewRepositoryError("failed to list customers", err.Error())
	}

	result := &ReminderResult{Month: month, Customers: len(due)}
	if len(due) == 0 {
		s.logger.Infow("no renewals due", "month", month)
		return result, nil
	}

	recipients, err := s.adminEmails(ctx)
	if err != nil {
		return nil, err
	}
	result.Recipients = len(recipients)
	if len(recipients) == 0 {
		s.logger.Warnw("no admin accounts to notify", "month", month)
		return result, nil
	}

	subject := fmt.Sprintf("Renovaciones de %s: %d clientes", month, len(due))
	if err := s.sender.Send(ctx, recipients, subject, digestBody(month, due)); err != nil {
		s.logger.Errorw("failed to send reminder", "error", err)
		return nil, errors.NewInternalError("failed to send reminder", err.Error())
	}

	s.logger.Infow("renewal reminder sent",
		"month", month, "customers", len(due), "recipients", len(recipients))
	return result, nil
}

func (s *ReminderService) adminEmails(ctx context.Context) ([]string, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewRepositoryError("failed to list users", err.Error())
	}

	emails := make([]string, 0, len(users))
	for _, u := range users {
		if u.Role().IsAdmin() {
			emails = append(emails, u.Email())
		}
	}
	return emails, nil
}

func digestBody(month string, due []*customer.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clientes con renovación en %s:\n\n", month)
	for _, c := range due {
		fmt.Fprintf(&b, "- %s (%s): encargado %s, tel %s, dirección %s\n",
			c.CompanyName(), c.Code(), c.ManagerName(), c.Phone(), c.Address())
	}
	return b.String()
}
