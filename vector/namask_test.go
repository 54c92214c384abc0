package vector

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/colvec/internal/fb"
)

func buildMaskTable(t *testing.T, kind fb.MaskType, words []uint64) *fb.NaMask {
	t.Helper()

	b := flatbuffers.NewBuilder(64)

	var wordsOff flatbuffers.UOffsetT
	if len(words) > 0 {
		fb.NaMaskStartBitMaskVector(b, len(words))
		for i := len(words) - 1; i >= 0; i-- {
			b.PrependUint64(words[i])
		}
		wordsOff = b.EndVector(len(words))
	}

	fb.NaMaskStart(b)
	fb.NaMaskAddMaskType(b, kind)
	if wordsOff != 0 {
		fb.NaMaskAddBitMask(b, wordsOff)
	}
	b.Finish(fb.NaMaskEnd(b))

	return fb.GetRootAsNaMask(b.FinishedBytes(), 0)
}

func TestNaMask_AllZeroes(t *testing.T) {
	mask, err := newNaMask(buildMaskTable(t, fb.MaskTypeAllZeroes, nil))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		require.True(t, mask.IsPresent(i))
	}
}

func TestNaMask_NilTable(t *testing.T) {
	mask, err := newNaMask(nil)
	require.NoError(t, err)
	require.Equal(t, fb.MaskTypeAllZeroes, mask.Kind())
	require.True(t, mask.IsPresent(0))
}

func TestNaMask_AllOnes(t *testing.T) {
	mask, err := newNaMask(buildMaskTable(t, fb.MaskTypeAllOnes, nil))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		require.False(t, mask.IsPresent(i))
	}
}

func TestNaMask_Bitmap(t *testing.T) {
	words := []uint64{1 | 1<<63, 1 << 1}
	mask, err := newNaMask(buildMaskTable(t, fb.MaskTypeSimpleBitMask, words))
	require.NoError(t, err)

	require.False(t, mask.IsPresent(0))
	require.True(t, mask.IsPresent(1))
	require.False(t, mask.IsPresent(63))
	require.True(t, mask.IsPresent(64))
	require.False(t, mask.IsPresent(65))
}

func TestNaMask_ShortWordsReadAsPresent(t *testing.T) {
	// One stored word; indexes past it land in implicit zero words.
	mask, err := newNaMask(buildMaskTable(t, fb.MaskTypeSimpleBitMask, []uint64{^uint64(0)}))
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		require.False(t, mask.IsPresent(i))
	}
	for i := 64; i < 256; i++ {
		require.True(t, mask.IsPresent(i), "index %d", i)
	}
}

func TestNaMask_UnknownKindRejected(t *testing.T) {
	_, err := newNaMask(buildMaskTable(t, fb.MaskType(9), nil))
	require.Error(t, err)
}
