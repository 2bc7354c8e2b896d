package prediction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// HorizonConfig bounds the projection horizon.
type HorizonConfig struct {
	Default int
	Max     int
}

// Snapshot is everything the engine needs for one user, loaded at once.
type Snapshot struct {
	Rules        []*entity.RecurringRule
	Exclusions   valueobject.ExclusionSet
	Transactions []*entity.Transaction
}

// Projector loads a user's snapshot and runs the projection engine over it.
type Projector struct {
	txnRepo  adapter.TransactionRepository
	ruleRepo adapter.RecurringRuleRepository
	ledger   *Ledger
	engine   *projection.Engine
	clock    adapter.Clock
	horizon  HorizonConfig
}

// NewProjector creates a new Projector instance.
func NewProjector(
	txnRepo adapter.TransactionRepository,
	ruleRepo adapter.RecurringRuleRepository,
	ledger *Ledger,
	engine *projection.Engine,
	clock adapter.Clock,
	horizon HorizonConfig,
) *Projector {
	if horizon.Default <= 0 {
		horizon.Default = projection.DefaultHorizon
	}
	if horizon.Max < horizon.Default {
		horizon.Max = horizon.Default
	}
	return &Projector{
		txnRepo:  txnRepo,
		ruleRepo: ruleRepo,
		ledger:   ledger,
		engine:   engine,
		clock:    clock,
		horizon:  horizon,
	}
}

// Horizon returns the configured bounds.
func (p *Projector) Horizon() HorizonConfig {
	return p.horizon
}

// Today returns the current month.
func (p *Projector) Today() valueobject.Month {
	return valueobject.MonthOf(p.clock.Now())
}

// Snapshot loads rules, exclusions and transactions concurrently.
func (p *Projector) Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rules, err := p.ruleRepo.FindByUser(gctx, userID, true)
		if err != nil {
			return domainerror.NewPersistenceError("load recurring rules", err)
		}
		snap.Rules = rules
		return nil
	})
	g.Go(func() error {
		set, err := p.ledger.Load(gctx, userID)
		if err != nil {
			return err
		}
		snap.Exclusions = set
		return nil
	})
	g.Go(func() error {
		txns, err := p.txnRepo.FindByUser(gctx, userID)
		if err != nil {
			return domainerror.NewPersistenceError("load transactions", err)
		}
		snap.Transactions = txns
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Input builds the engine input for a snapshot.
func (p *Projector) Input(snap *Snapshot, horizon int, reference time.Time) projection.Input {
	return projection.Input{
		Rules:       snap.Rules,
		Exclusions:  snap.Exclusions,
		RealByMonth: projection.GroupByMonth(snap.Transactions),
		AllKnown:    snap.Transactions,
		Horizon:     horizon,
		Reference:   reference,
	}
}

// Predict returns all predictions from the current month up to horizon months ahead.
func (p *Projector) Predict(snap *Snapshot, horizon int) []*entity.Transaction {
	return p.engine.Generate(p.Input(snap, horizon, p.clock.Now()))
}

// PredictMonth returns the predictions that fall in month. Months before the
// current one, or beyond the maximum horizon, have none.
func (p *Projector) PredictMonth(snap *Snapshot, month valueobject.Month) []*entity.Transaction {
	offset := month.MonthsSince(p.Today())
	if offset < 0 || offset > p.horizon.Max {
		return nil
	}
	return projection.InMonth(p.Predict(snap, offset), month)
}

// Find locates a live prediction within the maximum horizon.
func (p *Projector) Find(snap *Snapshot, key valueobject.PredictionKey) (*entity.Transaction, bool) {
	return p.engine.Find(p.Input(snap, p.horizon.Max, p.clock.Now()), key)
}
