package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	b := make([]byte, 4)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	b := make([]byte, 4)
	engine.PutUint32(b, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}

func TestCheckEndianness(t *testing.T) {
	native := CheckEndianness()
	require.Contains(t, []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}, native)
	require.Equal(t, native == binary.LittleEndian, IsNativeLittleEndian())
	require.Equal(t, native == binary.BigEndian, IsNativeBigEndian())
}

func TestCompareNativeEndian(t *testing.T) {
	require.True(t, CompareNativeEndian(GetLittleEndianEngine()) || CompareNativeEndian(GetBigEndianEngine()))
}

func TestAppendOperations(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint16(nil, 0x0102)
	buf = engine.AppendUint32(buf, 0x03040506)
	buf = engine.AppendUint64(buf, 0x0708090A0B0C0D0E)

	require.Len(t, buf, 14)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf[0:2]))
	require.Equal(t, uint32(0x03040506), engine.Uint32(buf[2:6]))
	require.Equal(t, uint64(0x0708090A0B0C0D0E), engine.Uint64(buf[6:14]))
}
