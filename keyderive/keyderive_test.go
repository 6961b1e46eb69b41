package keyderive

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tainnhan/loopring-sign/babyjubjub"
)

const refSignature = "0xf8214f068c55d1bebf1fbefced91eba5f4bbe14315e1ad71f61f21e094f5853a12eba239aeaa77538ae458eebe49ca2b732d211bf0943095b3502a3b0e6a08cd1c"

func TestDeriveReferenceVector(t *testing.T) {
	keys, err := Derive(refSignature)
	require.NoError(t, err)

	priv := keys.PrivateScalar.Bytes()
	x := keys.PublicX.Bytes()
	y := keys.PublicY.Bytes()
	require.Equal(t, "001fa186947c8c644cd11078f67e0bb21656432f55c4df76997b6acab2abda7f",
		hex.EncodeToString(priv[:]))
	require.Equal(t, "29d178cdd6a40cd900c41565b6057a1d12c00a8c41ad367e2fe0100aab00fbe3",
		hex.EncodeToString(x[:]))
	require.Equal(t, "29e339a045af33d5729eab3b64c617e6a78dcfd0988f95f215d443d77a864b9c",
		hex.EncodeToString(y[:]))
}

func TestDeriveSecondVector(t *testing.T) {
	sig := "0x" + strings.Repeat("ab", 65)
	keys, err := Derive(sig)
	require.NoError(t, err)

	priv := keys.PrivateScalar.Bytes()
	x := keys.PublicX.Bytes()
	y := keys.PublicY.Bytes()
	require.Equal(t, "00397f605ae06c3d2da951beb9a6d953ec28cb416860a5e411c7304b128a4d92",
		hex.EncodeToString(priv[:]))
	require.Equal(t, "245b8fe38246b5f3e8743762e602a8a18713090c438e0c52e1a82b600992e791",
		hex.EncodeToString(x[:]))
	require.Equal(t, "123e1d5002d58e367e911d9a24305cec3f329ccc0e121849228c6fb019fc3639",
		hex.EncodeToString(y[:]))
}

func TestDeriveIsPure(t *testing.T) {
	a, err := Derive(refSignature)
	require.NoError(t, err)
	b, err := Derive(refSignature)
	require.NoError(t, err)
	require.True(t, a.PrivateScalar.Equal(b.PrivateScalar))
	require.True(t, a.PublicX.Equal(b.PublicX))
	require.True(t, a.PublicY.Equal(b.PublicY))
}

func TestDerivePublicKeyIsValid(t *testing.T) {
	keys, err := Derive(refSignature)
	require.NoError(t, err)
	pub := babyjubjub.Point{X: keys.PublicX, Y: keys.PublicY}
	require.NoError(t, babyjubjub.ValidatePublic(pub))
}

func TestDeriveRejectsWrongLength(t *testing.T) {
	_, err := Derive("0xdeadbeef")
	require.Error(t, err)
}

func TestDeriveRejectsNonHex(t *testing.T) {
	_, err := Derive("0x" + strings.Repeat("zz", 65))
	require.Error(t, err)
}

func TestDeriveAcceptsBarePrefix(t *testing.T) {
	withPrefix, err := Derive(refSignature)
	require.NoError(t, err)
	bare, err := Derive(refSignature[2:])
	require.NoError(t, err)
	require.True(t, withPrefix.PrivateScalar.Equal(bare.PrivateScalar))
}
