// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gadgets

import (
	"testing"

	"github.com/EqualFiLabs/zkd/air"
	"github.com/stretchr/testify/require"
)

func placeholderScheme() *PedersenPlaceholder {
	return NewPedersenPlaceholder(DefaultPedersenParams())
}

func TestCommitOpenRoundTrip(t *testing.T) {
	ped := placeholderScheme()
	w := &Witness{Msg: []byte("message"), Blind: []byte("blind")}

	c, err := ped.Commit(w)
	require.NoError(t, err)

	ok, err := ped.Open(w, c)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ped.Open(&Witness{Msg: []byte("other"), Blind: w.Blind}, c)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = ped.Open(&Witness{Msg: w.Msg, Blind: []byte("other")}, c)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitLengthFraming(t *testing.T) {
	ped := placeholderScheme()
	// Same concatenation, different split: the length framing must separate
	// them.
	c1, err := ped.Commit(&Witness{Msg: []byte("ab"), Blind: []byte("c")})
	require.NoError(t, err)
	c2, err := ped.Commit(&Witness{Msg: []byte("a"), Blind: []byte("bc")})
	require.NoError(t, err)
	require.NotEqual(t, c1, c2)
}

func TestCommitUnknownHash(t *testing.T) {
	ped := NewPedersenPlaceholder(PedersenParams{HashID: "sha0"})
	_, err := ped.Commit(&Witness{Msg: []byte("m"), Blind: []byte("r")})
	require.ErrorIs(t, err, ErrUnsupportedHash)
}

func TestAddUnderCommitDeterministic(t *testing.T) {
	ped := placeholderScheme()

	c1, r12a, err := AddUnderCommit(ped, 3, []byte("r1"), 4, []byte("r2"))
	require.NoError(t, err)
	c2, r12b, err := AddUnderCommit(ped, 3, []byte("r1"), 4, []byte("r2"))
	require.NoError(t, err)
	require.Equal(t, c1, c2)
	require.Equal(t, r12a, r12b)

	// The combined commitment opens with the derived blind and the sum.
	expected, err := CommitU64(ped, 7, r12a)
	require.NoError(t, err)
	require.Equal(t, expected, c1)

	// Order matters in blind derivation.
	c3, _, err := AddUnderCommit(ped, 4, []byte("r2"), 3, []byte("r1"))
	require.NoError(t, err)
	require.NotEqual(t, c1, c3)
}

func TestScalarMulUnderCommit(t *testing.T) {
	ped := placeholderScheme()

	c, rPrime, err := ScalarMulUnderCommit(ped, 5, []byte("r"), 3)
	require.NoError(t, err)

	expected, err := CommitU64(ped, 15, rPrime)
	require.NoError(t, err)
	require.Equal(t, expected, c)
}

func TestRangeCheck(t *testing.T) {
	require.NoError(t, RangeCheckU64(15, 4))
	require.ErrorIs(t, RangeCheckU64(16, 4), ErrRangeCheckOverflow)
	require.NoError(t, RangeCheckU64(0, 1))
	require.NoError(t, RangeCheckU64(^uint64(0), 64))
	require.ErrorIs(t, RangeCheckU64(1, 0), ErrRangeCheckOverflow)
	require.ErrorIs(t, RangeCheckU64(1, 65), ErrRangeCheckOverflow)
}

func TestRangeCheckBoundaries(t *testing.T) {
	for k := uint32(1); k <= 63; k++ {
		limit := uint64(1) << k
		require.NoError(t, RangeCheckU64(limit-1, k), "k=%d", k)
		require.Error(t, RangeCheckU64(limit, k), "k=%d", k)
	}
}

func TestRangeCheckSlice(t *testing.T) {
	require.NoError(t, RangeCheckSliceU64([]uint64{1, 2, 3}, 2))
	require.ErrorIs(t, RangeCheckSliceU64([]uint64{1, 4}, 2), ErrRangeCheckOverflow)
}

func TestBlindingTracker(t *testing.T) {
	tracker := NewBlindingTracker()

	// Reuse allowed when the policy is off.
	require.NoError(t, tracker.NoteAndCheck([]byte("r"), false))
	require.NoError(t, tracker.NoteAndCheck([]byte("r"), false))

	tracker = NewBlindingTracker()
	require.NoError(t, tracker.NoteAndCheck([]byte("r"), true))
	require.ErrorIs(t, tracker.NoteAndCheck([]byte("r"), true), ErrBlindingReuse)
	require.NoError(t, tracker.NoteAndCheck([]byte("r2"), true))
}

func pedersenBindings() *air.Bindings {
	return &air.Bindings{
		Commitments: air.CommitmentsPolicy{
			Pedersen: true,
			Curve:    "placeholder",
		},
		HashIDForCommitments: "blake3",
	}
}

func TestPedersenCtxCommitOpen(t *testing.T) {
	ctx, err := NewPedersenCtx(pedersenBindings())
	require.NoError(t, err)

	tracker := NewBlindingTracker()
	commit, err := ctx.Commit(tracker, []byte("msg"), []byte("r"))
	require.NoError(t, err)
	require.NotEqual(t, commit.Cx, commit.Cy)

	require.NoError(t, ctx.Open([]byte("msg"), []byte("r"), commit))
	require.ErrorIs(t, ctx.Open([]byte("other"), []byte("r"), commit), ErrInvalidCurvePoint)
}

func TestPedersenCtxRejectsForeignCurve(t *testing.T) {
	b := pedersenBindings()
	b.Commitments.Curve = "bls12-381"
	_, err := NewPedersenCtx(b)
	require.ErrorIs(t, err, ErrUnsupportedCurve)
}

func TestBn254CommitOpen(t *testing.T) {
	committer := NewBn254Committer()
	w := &Witness{Msg: []byte{0x01, 0x02}, Blind: []byte{0xaa}}

	c, err := committer.Commit(w)
	require.NoError(t, err)

	ok, err := committer.Open(w, c)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = committer.Open(&Witness{Msg: []byte{0x03}, Blind: w.Blind}, c)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBn254HomomorphicAdd(t *testing.T) {
	committer := NewBn254Committer()

	m1 := EncodeU64LE(3)
	m2 := EncodeU64LE(4)
	msum := EncodeU64LE(7)
	r1 := EncodeU64LE(11)
	r2 := EncodeU64LE(13)
	rsum := EncodeU64LE(24)

	c1, err := committer.Commit(&Witness{Msg: m1[:], Blind: r1[:]})
	require.NoError(t, err)
	c2, err := committer.Commit(&Witness{Msg: m2[:], Blind: r2[:]})
	require.NoError(t, err)

	sum, err := committer.Add(c1, c2)
	require.NoError(t, err)

	direct, err := committer.Commit(&Witness{Msg: msum[:], Blind: rsum[:]})
	require.NoError(t, err)
	require.Equal(t, direct, sum)
}

func TestSchemeForCurve(t *testing.T) {
	s, err := SchemeForCurve("placeholder", "blake3")
	require.NoError(t, err)
	require.Equal(t, "pedersen", s.ID())

	s, err = SchemeForCurve("bn254", "blake3")
	require.NoError(t, err)
	require.Equal(t, "pedersen-bn254", s.ID())

	_, err = SchemeForCurve("curve25519", "blake3")
	require.ErrorIs(t, err, ErrUnsupportedCurve)
}
