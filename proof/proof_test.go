// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := &Header{
		BackendIDHash: 0x0123456789abcdef,
		ProfileIDHash: 0xfedcba9876543210,
		PubIOHash:     42,
		BodyLen:       8,
	}
	encoded := h.Encode()
	require.Len(t, encoded[:], HeaderSize)

	decoded, err := Decode(encoded[:])
	require.NoError(t, err)
	require.Equal(t, h, decoded)
}

func TestDecodeShortInput(t *testing.T) {
	_, err := Decode(make([]byte, 39))
	require.Error(t, err)
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, "proof too short for header", corrupt.Reason)
}

func TestDecodeBadMagic(t *testing.T) {
	h := &Header{BodyLen: 1}
	encoded := h.Encode()
	encoded[0] = 'X'
	_, err := Decode(encoded[:])
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, "bad magic", corrupt.Reason)
}

func TestDecodeBadVersion(t *testing.T) {
	h := &Header{}
	encoded := h.Encode()
	encoded[4] = 9
	_, err := Decode(encoded[:])
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, "unsupported proof version 9", corrupt.Reason)
}

func TestAssembleLayout(t *testing.T) {
	h := &Header{BodyLen: 3}
	blob := Assemble(h, []byte{1, 2, 3})
	require.Len(t, blob, HeaderSize+3)
	require.Equal(t, []byte("PROF"), blob[0:4])
	require.Equal(t, []byte{1, 2, 3}, blob[HeaderSize:])
}

func TestHash64IsStableAndLabeled(t *testing.T) {
	a := Hash64(LabelBackend, []byte("native@0.0"))
	b := Hash64(LabelBackend, []byte("native@0.0"))
	require.Equal(t, a, b)

	c := Hash64(LabelProfile, []byte("native@0.0"))
	require.NotEqual(t, a, c, "label must separate domains")
}
