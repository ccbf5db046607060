package intcode

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotResume(t *testing.T) {
	m := New(doubler)
	_, err := m.RunToNextInput(5)
	require.NoError(t, err)

	snap := m.Snapshot()
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, []int64{10}, snap.Output)

	data, err := MarshalSnapshot(snap)
	require.NoError(t, err)

	decoded, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)

	restored, err := Restore(decoded)
	require.NoError(t, err)
	assert.Equal(t, m.State(), restored.State())

	for _, machine := range []*Machine{m, restored} {
		v, ok, err := machine.RunToOutput(7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(14), v)
		assert.Equal(t, []int64{10, 14}, machine.Output())
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	m := New([]int64{104, 1, 99})
	snap := m.Snapshot()
	require.NoError(t, m.Run())

	assert.Empty(t, snap.Output)
	assert.False(t, snap.Halted)

	restored, err := Restore(snap)
	require.NoError(t, err)
	require.NoError(t, restored.Run())
	assert.Equal(t, m.Output(), restored.Output())
}

func TestSnapshotDeterministicEncoding(t *testing.T) {
	snap := New([]int64{3, 0, 99}, 1, 2).Snapshot()
	a, err := MarshalSnapshot(snap)
	require.NoError(t, err)
	b, err := MarshalSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRestoreRejectsBadSnapshot(t *testing.T) {
	_, err := Restore(&Snapshot{IP: -1})
	assert.ErrorIs(t, err, ErrNegativeAddress)

	_, err = Restore(&Snapshot{Input: []int64{1}, InputCursor: 2})
	assert.Error(t, err)
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.cbor")
	m := New([]int64{104, 1, 99})
	require.NoError(t, m.Run())

	require.NoError(t, SaveSnapshot(path, m.Snapshot()))
	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.True(t, snap.Halted)
	assert.Equal(t, []int64{1}, snap.Output)

	_, err = UnmarshalSnapshot([]byte{0xff, 0x00})
	assert.Error(t, err)
}
