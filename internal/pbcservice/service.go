// Package pbcservice exposes the translation pipeline behind a small
// service interface: translate QASM source, keep results by id, and
// render stored schedules.
package pbcservice

import (
	"image"

	"github.com/kegliz/qspc/internal/logger"
	"github.com/kegliz/qspc/internal/schedrender"
	"github.com/kegliz/qspc/qc/pbc"
	"github.com/kegliz/qspc/qc/qasm"
	"github.com/kegliz/qspc/qc/translate"
)

type (
	// Counts summarizes the operator stream before translation.
	Counts struct {
		Total                int `json:"total"`
		SingleQubitCliffords int `json:"single_qubit_cliffords"`
		NonCliffords         int `json:"non_cliffords"`
		MultiQubitCliffords  int `json:"multi_qubit_cliffords"`
	}

	// OperatorValue is the wire form of one operator.
	OperatorValue struct {
		Kind  string `json:"kind"` // "rotation" or "measurement"
		Axis  string `json:"axis"`
		Angle string `json:"angle,omitempty"`
	}

	// CompactValue is the wire form of one compact operator.
	CompactValue struct {
		OperatorValue
		Clocks int `json:"clocks"`
	}

	// Translation is the result of translating one source program.
	Translation struct {
		NumQubits int             `json:"num_qubits"`
		Counts    Counts          `json:"counts"`
		SPC       []OperatorValue `json:"spc"`
		Compact   []CompactValue  `json:"compact"`

		compact []pbc.ClockedOperator
	}

	// ServiceOptions are options for constructing a service.
	ServiceOptions struct {
		Logger *logger.Logger
		Store  TranslationStore
	}

	Service interface {
		Translate(log *logger.Logger, source string) (*Translation, error)
		SaveTranslation(log *logger.Logger, source string) (string, error)
		GetTranslation(log *logger.Logger, id string) (*Translation, error)
		RenderSchedule(log *logger.Logger, id string) (*image.RGBA, error)
	}

	service struct {
		store TranslationStore

		logger *logger.Logger
		sr     *schedrender.Renderer
	}
)

// NewService creates a new service.
func NewService(opts ServiceOptions) Service {
	if opts.Logger == nil {
		opts.Logger = logger.NewLogger(logger.LoggerOptions{
			Debug: false,
		})
	}
	if opts.Store == nil {
		opts.Store = NewTranslationStore()
	}
	return &service{
		logger: opts.Logger,
		store:  opts.Store,
		sr:     schedrender.NewDefaultRenderer(),
	}
}

// Translate implements Service.
func (s *service) Translate(l *logger.Logger, source string) (*Translation, error) {
	l.Debug().Int("sourcelen", len(source)).Msg("Translating program...")
	nodes, err := qasm.Parse(source)
	if err != nil {
		return nil, err
	}
	ops, regs, err := translate.Extract(nodes)
	if err != nil {
		return nil, err
	}
	return newTranslation(ops, regs.NumQubits()), nil
}

// SaveTranslation implements Service.
func (s *service) SaveTranslation(l *logger.Logger, source string) (string, error) {
	l.Debug().Msg("Saving translation...")
	tr, err := s.Translate(l, source)
	if err != nil {
		return "", err
	}
	return s.store.SaveTranslation(tr)
}

// GetTranslation implements Service.
func (s *service) GetTranslation(l *logger.Logger, id string) (*Translation, error) {
	return s.store.GetTranslation(id)
}

// RenderSchedule implements Service.
func (s *service) RenderSchedule(l *logger.Logger, id string) (*image.RGBA, error) {
	l.Debug().Msgf("Rendering schedule with id: " + id + " ...")
	tr, err := s.store.GetTranslation(id)
	if err != nil {
		return nil, err
	}
	return s.sr.RenderSchedule(tr.compact, tr.NumQubits), nil
}

func newTranslation(ops []pbc.Operator, numQubits int) *Translation {
	counts := Counts{Total: len(ops)}
	for _, op := range ops {
		if op.IsSingleQubitClifford() {
			counts.SingleQubitCliffords++
		}
		if op.IsNonCliffordRotationOrMeasurement() {
			counts.NonCliffords++
		}
		if op.IsMultiQubitClifford() {
			counts.MultiQubitCliffords++
		}
	}

	spc := pbc.SPCTranslation(ops)
	compact := pbc.SPCCompactTranslation(ops)

	tr := &Translation{
		NumQubits: numQubits,
		Counts:    counts,
		SPC:       make([]OperatorValue, 0, len(spc)),
		Compact:   make([]CompactValue, 0, len(compact)),
		compact:   compact,
	}
	for _, op := range spc {
		tr.SPC = append(tr.SPC, operatorValue(op))
	}
	for _, co := range compact {
		tr.Compact = append(tr.Compact, CompactValue{
			OperatorValue: operatorValue(co.Op),
			Clocks:        co.Clocks,
		})
	}
	return tr
}

func operatorValue(op pbc.Operator) OperatorValue {
	switch o := op.(type) {
	case pbc.Rotation:
		return OperatorValue{Kind: "rotation", Axis: o.R.Axis.String(), Angle: o.R.Angle.String()}
	default:
		return OperatorValue{Kind: "measurement", Axis: op.Axis().String()}
	}
}
