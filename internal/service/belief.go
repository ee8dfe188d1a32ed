package service

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/jtms"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/metrics"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/seed"
	"go.uber.org/zap"
)

var (
	ErrBeliefIDEmpty   = errors.New("belief id is required")
	ErrConclusionEmpty = errors.New("conclusion is required")
)

// JustificationRequest describes a rule to declare. A nil Strict falls back
// to the service default.
type JustificationRequest struct {
	In         []string
	Out        []string
	Conclusion string
	Strict     *bool
}

// BeliefService serialises access to a single belief network.
type BeliefService struct {
	mu      sync.Mutex
	network *jtms.Network
	logger  *zap.Logger
	metrics *metrics.Metrics
	strict  bool
}

func NewBeliefService(logger *zap.Logger, m *metrics.Metrics, strict bool) *BeliefService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &BeliefService{
		logger:  logger,
		metrics: m,
		strict:  strict,
	}
	s.network = s.newNetwork()
	return s
}

func (s *BeliefService) newNetwork() *jtms.Network {
	n := jtms.New(s.logger.Named("jtms"))
	if s.metrics != nil {
		n.SetObserver(s.metrics)
	}
	return n
}

func (s *BeliefService) strictOr(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.strict
}

// updateSize must be called with mu held.
func (s *BeliefService) updateSize() {
	if s.metrics != nil {
		s.metrics.SetNetworkSize(s.network.Len(), s.network.JustificationCount())
	}
}

func validateIDs(ids []string) error {
	for _, id := range ids {
		if id == "" {
			return ErrBeliefIDEmpty
		}
	}
	return nil
}

func (s *BeliefService) DeclareBelief(id string) (bool, error) {
	if id == "" {
		return false, ErrBeliefIDEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.network.DeclareBelief(id)
	if created {
		s.logger.Debug("belief declared", zap.String("belief_id", id))
	}
	s.updateSize()
	return created, nil
}

func (s *BeliefService) DeclareJustification(req JustificationRequest) (domain.JustificationView, error) {
	if req.Conclusion == "" {
		return domain.JustificationView{}, ErrConclusionEmpty
	}
	if err := validateIDs(req.In); err != nil {
		return domain.JustificationView{}, err
	}
	if err := validateIDs(req.Out); err != nil {
		return domain.JustificationView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jid, err := s.network.DeclareJustification(req.In, req.Out, req.Conclusion, s.strictOr(req.Strict))
	if err != nil {
		return domain.JustificationView{}, err
	}
	s.updateSize()

	s.logger.Info("justification declared",
		zap.Int("justification_id", int(jid)),
		zap.String("conclusion", req.Conclusion),
	)
	return s.network.Justification(jid)
}

func (s *BeliefService) RemoveBelief(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.network.RemoveBelief(id); err != nil {
		return err
	}
	s.updateSize()
	s.logger.Info("belief removed", zap.String("belief_id", id))
	return nil
}

func (s *BeliefService) RemoveJustification(jid domain.JustificationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.network.RemoveJustification(jid); err != nil {
		return err
	}
	s.updateSize()
	s.logger.Info("justification removed", zap.Int("justification_id", int(jid)))
	return nil
}

func (s *BeliefService) ForceValidity(id string, v domain.Validity, strict *bool) (domain.BeliefView, error) {
	if id == "" {
		return domain.BeliefView{}, ErrBeliefIDEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.network.ForceBeliefValidity(id, v, s.strictOr(strict)); err != nil {
		return domain.BeliefView{}, err
	}
	s.updateSize()
	s.logger.Info("belief validity forced", zap.String("belief_id", id), zap.String("validity", string(v)))
	return s.network.Belief(id)
}

// Rescan runs the cycle rescan and returns the newly flagged beliefs.
func (s *BeliefService) Rescan() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.Rescan()
}

func (s *BeliefService) Belief(id string) (domain.BeliefView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.Belief(id)
}

func (s *BeliefService) Beliefs() []domain.BeliefView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.BeliefViews()
}

func (s *BeliefService) Justifications(id string) ([]domain.JustificationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.Justifications(id)
}

func (s *BeliefService) Explain(id string) (domain.Explanation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.Explain(id)
}

func (s *BeliefService) Snapshot() domain.NetworkSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.network.Snapshot()
}

// LoadSeed replaces the network with one built from doc. The current
// network is kept when the document fails to apply.
func (s *BeliefService) LoadSeed(doc *seed.Document) error {
	n := s.newNetwork()
	err := doc.Apply(n)
	if s.metrics != nil {
		s.metrics.SeedLoaded(err)
	}
	if err != nil {
		s.logger.Warn("seed rejected", zap.Error(err))
		return errors.Wrap(err, "load seed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.network = n
	s.updateSize()

	s.logger.Info("seed loaded",
		zap.Int("beliefs", n.Len()),
		zap.Int("justifications", n.JustificationCount()),
	)
	return nil
}
