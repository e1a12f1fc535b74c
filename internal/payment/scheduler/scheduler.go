package scheduler

import (
	"time"

	"genesis-backend/internal/payment/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OverdueSweeper periodically flips pending payments past their due date
// to overdue, so clients never have to compute overdue state themselves.
type OverdueSweeper struct {
	paymentUsecase usecase.PaymentUsecase
	spec           string
	cron           *cron.Cron
}

// NewOverdueSweeper creates a sweeper with a cron spec (e.g. "0 * * * *")
func NewOverdueSweeper(paymentUsecase usecase.PaymentUsecase, spec string) *OverdueSweeper {
	return &OverdueSweeper{
		paymentUsecase: paymentUsecase,
		spec:           spec,
		cron:           cron.New(),
	}
}

// Start registers the sweep job and runs it once immediately
func (s *OverdueSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}

	s.sweep()
	s.cron.Start()
	logrus.WithField("spec", s.spec).Info("payment overdue sweeper started")
	return nil
}

// Stop halts the cron loop
func (s *OverdueSweeper) Stop() {
	s.cron.Stop()
}

func (s *OverdueSweeper) sweep() {
	changed, err := s.paymentUsecase.SweepOverdue(time.Now())
	if err != nil {
		logrus.WithError(err).Error("payment overdue sweep failed")
		return
	}
	if changed > 0 {
		logrus.WithField("payments", changed).Info("marked payments overdue")
	}
}
