package sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// Repository определяет операции хранилища, нужные для очистки
type Repository interface {
	GetAllLinks() []model.Link
	DeleteLinkIf(code model.Code, pred func(model.Link) bool) (model.Link, bool)
}

//go:generate mockery --name Notifier

// Notifier получает сообщение о каждой автоматически удалённой ссылке
type Notifier interface {
	Notify(message string)
}

// Config расписание очистки
type Config struct {
	InitialDelay time.Duration
	Period       time.Duration
}

// Sweeper периодически удаляет ссылки с истёкшим сроком жизни
type Sweeper struct {
	repo     Repository
	notifier Notifier
	cfg      Config
	log      *zap.Logger
	nowFunc  func() time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	stopped bool
}

// New создает Sweeper. notifier может быть пустым интерфейсом (nil),
// тогда уведомления не отправляются; типизированный nil-указатель должен сам
// поддерживать вызов Notify, как notifier.Console и notifier.Log.
func New(repo Repository, notifier Notifier, cfg Config, log *zap.Logger) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())

	return &Sweeper{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		nowFunc:  time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start запускает фоновую очистку. Повторный вызов и вызов после Stop ничего не делают.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	s.log.Info("starting link sweeper",
		zap.Duration("initial_delay", s.cfg.InitialDelay),
		zap.Duration("period", s.cfg.Period),
	)

	s.wg.Add(1)
	go s.run()
}

// Stop останавливает будущие циклы и дожидается завершения текущего.
// Идемпотентен.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		s.cancel()
		s.log.Info("stopping link sweeper")
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Run запускает очистку и останавливает её при отмене ctx
func (s *Sweeper) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return nil
}

// SweepOnce удаляет ссылки, срок которых истёк строго раньше now, и возвращает число удалённых.
// Срок перепроверяется под блокировкой хранилища, поэтому продление TTL, успевшее до удаления, сохраняет ссылку.
func (s *Sweeper) SweepOnce(now time.Time) int {
	removed := 0

	for _, link := range s.repo.GetAllLinks() {
		if !link.ExpiresAt.Before(now) {
			continue
		}

		_, deleted := s.repo.DeleteLinkIf(link.ID, func(current model.Link) bool {
			return current.ExpiresAt.Before(now)
		})
		if !deleted {
			continue
		}

		removed++
		s.log.Info("expired link removed",
			zap.String("id", link.ID.String()),
			zap.Time("expires_at", link.ExpiresAt),
		)
		if s.notifier != nil {
			s.notifier.Notify(fmt.Sprintf("link %s removed automatically: TTL expired", link.ID))
		}
	}

	return removed
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	timer := time.NewTimer(s.cfg.InitialDelay)
	defer timer.Stop()

	select {
	case <-s.ctx.Done():
		return
	case <-timer.C:
	}

	ticker := time.NewTicker(s.cfg.Period)
	defer ticker.Stop()

	for {
		s.cycle()

		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) cycle() {
	removed := s.SweepOnce(s.nowFunc())
	if removed > 0 {
		s.log.Debug("sweep cycle finished", zap.Int("removed", removed))
	}
}
