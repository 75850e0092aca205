package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payroll/internal/events"
	"go-payroll/internal/mailer"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/connection"
)

// RunConsumer subscribes to payslip-generated events and emails payslips
// to employees until the process receives SIGINT/SIGTERM.
func RunConsumer() error {
	logger := zap.L().Named("consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	artifactRepo := payslip.NewRepository(gormDB)
	mail := mailer.New(mailer.ConfigFromEnv())

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:9092"
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{broker},
		Topic:   events.PayslipGeneratedTopic,
		GroupID: "go-payroll-payslip-email",
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumePayslipGenerated(ctx, reader, mail, artifactRepo, logger)

	logger.Info("payslip email consumer stopped")
	return nil
}
