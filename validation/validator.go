// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/crypto"
	"github.com/EqualFiLabs/zkd/gadgets"
)

// Config is the resolved validation policy. Fields are exported so callers
// (and tests) can tighten the policy before running checks.
type Config struct {
	PedersenEnabled bool
	AllowedCurves   []string
	KeccakEnabled   bool
	NoRReuse        bool

	requestedCurve string
	requestedHash  string
}

func configFromBindings(b *air.Bindings) Config {
	cfg := Config{
		PedersenEnabled: b.Commitments.Pedersen,
		KeccakEnabled:   true,
		NoRReuse:        b.Commitments.NoRReuse,
		requestedCurve:  b.Commitments.Curve,
		requestedHash:   b.HashIDForCommitments,
	}
	if cfg.requestedCurve != "" {
		cfg.AllowedCurves = []string{cfg.requestedCurve}
	}
	return cfg
}

func (c *Config) keccakRequested() bool {
	return strings.EqualFold(c.requestedHash, "keccak") ||
		strings.EqualFold(c.requestedHash, crypto.HashKeccak256)
}

func (c *Config) curveAllowed(curve string) bool {
	if len(c.AllowedCurves) == 0 {
		return true
	}
	for _, allowed := range c.AllowedCurves {
		if strings.EqualFold(allowed, curve) {
			return true
		}
	}
	return false
}

// Validator runs the ordered commitment/range/reuse checks for one pass.
// One fatal finding does not abort the pass: every check records its result
// and the report enumerates all findings.
type Validator struct {
	cfg    Config
	ped    *gadgets.PedersenCtx
	blinds *gadgets.BlindingTracker
	report *Report
	start  time.Time
}

// NewValidator builds a validator from AIR bindings. A pedersen context
// that cannot be constructed (unsupported curve) is recorded as an init
// finding rather than failing construction.
func NewValidator(b *air.Bindings) *Validator {
	cfg := configFromBindings(b)
	hashID := cfg.requestedHash
	if hashID == "" {
		hashID = crypto.HashBlake3
	}
	v := &Validator{
		cfg:    cfg,
		blinds: gadgets.NewBlindingTracker(),
		report: NewReport(ReportMeta{
			HashID: hashID,
			Curve:  cfg.requestedCurve,
		}),
		start: time.Now(),
	}
	if cfg.PedersenEnabled {
		ped, err := gadgets.NewPedersenCtx(b)
		if err != nil {
			v.pushGadgetError(err, map[string]any{"operation": "init"})
		} else {
			v.ped = ped
		}
	}
	return v
}

// Config exposes the policy for adjustment before checks run.
func (v *Validator) Config() *Config { return &v.cfg }

// SetMeta records the backend and profile ids in the report.
func (v *Validator) SetMeta(backendID, profileID string) {
	v.report.Meta.BackendID = backendID
	v.report.Meta.ProfileID = profileID
}

// gate runs the shared preconditions for commitment checks. It returns
// false (after recording the finding) when the check must not proceed.
func (v *Validator) gate(operation string) bool {
	if !v.cfg.PedersenEnabled {
		v.report.PushError(Error{
			Code:    CodePedersenNotEnabled,
			Msg:     "pedersen commitments disabled by configuration",
			Context: map[string]any{"operation": operation},
		})
		return false
	}
	if curve := v.cfg.requestedCurve; curve != "" && !v.cfg.curveAllowed(curve) {
		v.report.PushError(Error{
			Code:    CodeCurveNotAllowed,
			Msg:     "curve not allowed by configuration",
			Context: map[string]any{"operation": operation, "curve": curve},
		})
		return false
	}
	if v.cfg.keccakRequested() && !v.cfg.KeccakEnabled {
		v.report.PushError(Error{
			Code:    CodeKeccakNotEnabled,
			Msg:     "keccak commitments disabled by configuration",
			Context: map[string]any{"operation": operation, "hash": v.cfg.requestedHash},
		})
		return false
	}
	return true
}

// CheckCommitPoint commits (msg, r), then opens the resulting (Cx, Cy)
// pair; an open failure is recorded as an invalid curve point.
func (v *Validator) CheckCommitPoint(msg, r []byte) {
	if !v.gate("check_commit_point") {
		return
	}
	if v.ped == nil {
		return
	}
	commit, err := v.ped.Commit(v.blinds, msg, r)
	if err != nil {
		v.pushGadgetError(err, map[string]any{"operation": "check_commit_point"})
		return
	}
	if err := v.ped.Open(msg, r, commit); err != nil {
		v.pushGadgetError(err, map[string]any{"operation": "check_commit_point"})
	}
}

// CheckCommitPointWithPair opens a caller-supplied (Cx, Cy) pair.
func (v *Validator) CheckCommitPointWithPair(msg, r []byte, commit gadgets.PedersenCommit) {
	if !v.gate("check_commit_point") {
		return
	}
	if v.ped == nil {
		return
	}
	if err := v.ped.Open(msg, r, commit); err != nil {
		v.pushGadgetError(err, map[string]any{"operation": "check_commit_point"})
	}
}

// CheckRReuse enforces the blinding-reuse policy for r.
func (v *Validator) CheckRReuse(r []byte) {
	if !v.cfg.PedersenEnabled {
		v.report.PushError(Error{
			Code:    CodePedersenNotEnabled,
			Msg:     "pedersen commitments disabled by configuration",
			Context: map[string]any{"operation": "check_r_reuse"},
		})
		return
	}
	if v.ped == nil {
		return
	}
	if err := v.blinds.NoteAndCheck(r, v.ped.NoReuse()); err != nil {
		v.pushGadgetError(err, map[string]any{"operation": "check_r_reuse"})
	}
}

// CheckRangeU64 delegates to the k-bit range gadget.
func (v *Validator) CheckRangeU64(value uint64, bits uint32) {
	if err := gadgets.RangeCheckU64(value, bits); err != nil {
		v.pushGadgetError(err, map[string]any{
			"operation": "check_range_u64",
			"value":     value,
			"bits":      bits,
		})
	}
}

// Finalize stamps the elapsed time and computes commit_passed from the
// commit-affecting error set. The validator must not be used afterwards.
func (v *Validator) Finalize() *Report {
	v.report.Meta.TimeMS = uint64(time.Since(v.start).Milliseconds())

	commitPassed := true
	for _, e := range v.report.Errors {
		if commitErrorCodes[e.Code] {
			commitPassed = false
			break
		}
	}
	v.report.SetCommitPassed(commitPassed)
	return v.report
}

func (v *Validator) pushGadgetError(err error, context map[string]any) {
	v.report.PushError(Error{
		Code:    mapGadgetError(err),
		Msg:     err.Error(),
		Context: context,
	})
}

// mapGadgetError converts gadget errors onto report codes. Unclassified
// internal failures surface as UnsupportedCurve, matching the report's
// closed code set.
func mapGadgetError(err error) ErrorCode {
	switch {
	case errors.Is(err, gadgets.ErrInvalidCurvePoint):
		return CodeInvalidCurvePoint
	case errors.Is(err, gadgets.ErrBlindingReuse):
		return CodeBlindingReuse
	case errors.Is(err, gadgets.ErrRangeCheckOverflow):
		return CodeRangeCheckOverflow
	case errors.Is(err, gadgets.ErrUnsupportedCurve):
		return CodeCurveNotAllowed
	default:
		return CodeUnsupportedCurve
	}
}
