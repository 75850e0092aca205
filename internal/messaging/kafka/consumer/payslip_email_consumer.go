package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payroll/internal/events"
	"go-payroll/internal/mailer"
	"go-payroll/internal/payslip"
)

// ConsumePayslipGenerated delivers payslip emails. Delivery is best-effort
// notification: a send failure leaves the message uncommitted so the group
// retries it, and never touches the payroll ledger.
func ConsumePayslipGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	mail mailer.Mailer,
	artifacts payslip.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_email")
	log.Info("payslip email consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip email consumer stopped")
				return
			}
			log.Error("fetch payslip email message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject := fmt.Sprintf("Your payslip for %s", event.Month)
		body := fmt.Sprintf(
			"Hello %s,\r\n\r\nYour payslip for %s has been generated.\r\nDocument: %s\r\n",
			event.EmployeeName, event.Month, event.FilePath,
		)

		if err := mail.Send(ctx, event.EmployeeEmail, subject, body); err != nil {
			log.Error("send payslip email failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if err := artifacts.MarkEmailSent(ctx, event.EmployeeID, event.Month, time.Now()); err != nil {
			log.Error("mark payslip email sent failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("month", event.Month),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip email message failed", zap.Error(err))
			continue
		}

		log.Info("payslip email delivered",
			zap.String("employee_id", event.EmployeeID),
			zap.String("month", event.Month),
		)
	}
}
