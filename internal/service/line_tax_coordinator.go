package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/gst"
	"fuelbooks/internal/logger"
	"fuelbooks/internal/port"
)

// OracleOutcome classifies what happened to an authoritative result.
type OracleOutcome string

const (
	OutcomeApplied OracleOutcome = "applied"
	OutcomeStale   OracleOutcome = "stale"
	OutcomeFailed  OracleOutcome = "failed"
)

// LineEditInput is one edit of a draft purchase line.
type LineEditInput struct {
	ProductID    uuid.UUID        `json:"product_id"`
	VendorID     uuid.UUID        `json:"vendor_id"`
	Jurisdiction gst.Jurisdiction `json:"jurisdiction"`
	Item         gst.LineItem     `json:"item"`
}

// LineTaxState is the current tax view of a draft line.
type LineTaxState struct {
	LineID   uuid.UUID        `json:"line_id"`
	Item     gst.LineItem     `json:"item"`
	Tax      gst.Breakdown    `json:"tax"`
	Source   domain.TaxSource `json:"source"`
	Sequence uint64           `json:"sequence"`
	Pending  bool             `json:"pending"`
}

// LineTaxCoordinator answers line edits with a locally computed breakdown
// and swaps in the oracle's answer when it arrives, unless a newer edit of
// the same line has been issued in the meantime.
type LineTaxCoordinator interface {
	Edit(ctx context.Context, lineID uuid.UUID, input LineEditInput) (*LineTaxState, error)
	State(lineID uuid.UUID) (*LineTaxState, error)
	Forget(lineID uuid.UUID)
	Wait()
}

// LineTaxCoordinatorConfig holds settings for the coordinator.
type LineTaxCoordinatorConfig struct {
	OracleTimeout time.Duration
}

type lineTaxCoordinator struct {
	oracle port.TaxOracle
	log    *zap.Logger
	cfg    LineTaxCoordinatorConfig

	mu      sync.Mutex
	nextSeq uint64
	lines   map[uuid.UUID]*LineTaxState
	wg      sync.WaitGroup
}

// NewLineTaxCoordinator creates a LineTaxCoordinator. A nil oracle keeps
// every line on its local result.
func NewLineTaxCoordinator(oracle port.TaxOracle, log *zap.Logger, cfg LineTaxCoordinatorConfig) LineTaxCoordinator {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.OracleTimeout <= 0 {
		cfg.OracleTimeout = 10 * time.Second
	}
	return &lineTaxCoordinator{
		oracle: oracle,
		log:    log,
		cfg:    cfg,
		lines:  make(map[uuid.UUID]*LineTaxState),
	}
}

func (c *lineTaxCoordinator) Edit(ctx context.Context, lineID uuid.UUID, input LineEditInput) (*LineTaxState, error) {
	local, err := gst.ComputeLine(input.Item, input.Jurisdiction)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Sequences are unique across lines so a result from before Forget can
	// never match a line that was edited again afterwards.
	c.nextSeq++
	seq := c.nextSeq
	st := &LineTaxState{
		LineID:   lineID,
		Item:     input.Item,
		Tax:      local,
		Source:   domain.TaxSourceLocal,
		Sequence: seq,
		Pending:  c.oracle != nil,
	}
	c.lines[lineID] = st
	out := *st
	if c.oracle != nil {
		c.wg.Add(1)
	}
	c.mu.Unlock()

	if c.oracle != nil {
		req := port.OracleRequest{
			ProductID:    input.ProductID,
			VendorID:     input.VendorID,
			Quantity:     input.Item.Quantity,
			PurchaseRate: input.Item.UnitRate,
			Discount:     input.Item.DiscountAmount,
		}
		log := logger.WithContext(ctx, c.log)
		go c.fetch(log, lineID, seq, req)
	}
	return &out, nil
}

func (c *lineTaxCoordinator) fetch(log *zap.Logger, lineID uuid.UUID, seq uint64, req port.OracleRequest) {
	defer c.wg.Done()

	// In-flight calls are never canceled by a newer edit; only their result
	// is dropped.
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.OracleTimeout)
	defer cancel()

	b, err := c.oracle.CalculateLineTax(ctx, req)
	outcome := c.apply(lineID, seq, b, err)

	fields := []zap.Field{
		zap.String("line_id", lineID.String()),
		zap.Uint64("sequence", seq),
		zap.String("outcome", string(outcome)),
	}
	switch outcome {
	case OutcomeFailed:
		log.Warn("authoritative line tax unavailable, keeping local result", append(fields, zap.Error(err))...)
	case OutcomeStale:
		log.Debug("discarding stale authoritative line tax", fields...)
	default:
		log.Debug("applied authoritative line tax", fields...)
	}
}

func (c *lineTaxCoordinator) apply(lineID uuid.UUID, seq uint64, b *gst.Breakdown, err error) OracleOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.lines[lineID]
	if !ok || st.Sequence != seq {
		return OutcomeStale
	}
	st.Pending = false
	if err != nil || b == nil {
		return OutcomeFailed
	}
	st.Tax = *b
	st.Source = domain.TaxSourceAuthoritative
	return OutcomeApplied
}

func (c *lineTaxCoordinator) State(lineID uuid.UUID) (*LineTaxState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.lines[lineID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *st
	return &out, nil
}

func (c *lineTaxCoordinator) Forget(lineID uuid.UUID) {
	c.mu.Lock()
	delete(c.lines, lineID)
	c.mu.Unlock()
}

// Wait blocks until every in-flight oracle call has finished.
func (c *lineTaxCoordinator) Wait() {
	c.wg.Wait()
}
