// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probelio/labextract/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"))
}

func glukoz(value string) types.Measurement {
	return types.Measurement{
		Date: "01/10/2023 09:15", OldValue: "7.6", Range: "3.5-5.5",
		Unit: "mmol/L", Value: value, Name: "Glukoz",
	}
}

func TestLoadAbsent(t *testing.T) {
	records, state := testStore(t).Load()
	assert.Equal(t, LoadAbsent, state)
	assert.Empty(t, records)
}

func TestLoadCorrupt(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	records, state := s.Load()
	assert.Equal(t, LoadCorrupt, state)
	assert.Empty(t, records)
}

func TestMergeIntoEmpty(t *testing.T) {
	s := testStore(t)

	sum, err := s.Merge([]types.Measurement{glukoz("7.8")})
	require.NoError(t, err)
	assert.Equal(t, LoadAbsent, sum.State)
	assert.Equal(t, 1, sum.Added)
	assert.Equal(t, 0, sum.Replaced)
	assert.Equal(t, 1, sum.Stored)

	records, state := s.Load()
	assert.Equal(t, LoadOK, state)
	require.Len(t, records, 1)
	assert.Equal(t, glukoz("7.8"), records[0])
}

func TestMergeIdempotent(t *testing.T) {
	s := testStore(t)
	batch := []types.Measurement{glukoz("7.8")}

	_, err := s.Merge(batch)
	require.NoError(t, err)
	once, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	_, err = s.Merge(batch)
	require.NoError(t, err)
	twice, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestMergeLaterBatchWins(t *testing.T) {
	s := testStore(t)

	_, err := s.Merge([]types.Measurement{glukoz("1.0")})
	require.NoError(t, err)

	sum, err := s.Merge([]types.Measurement{glukoz("2.0")})
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Added)
	assert.Equal(t, 1, sum.Replaced)
	assert.Equal(t, 1, sum.Stored)

	records, _ := s.Load()
	require.Len(t, records, 1)
	assert.Equal(t, "2.0", records[0].Value)
}

func TestMergeLaterInBatchWins(t *testing.T) {
	s := testStore(t)

	_, err := s.Merge([]types.Measurement{glukoz("1.0"), glukoz("2.0")})
	require.NoError(t, err)

	records, _ := s.Load()
	require.Len(t, records, 1)
	assert.Equal(t, "2.0", records[0].Value)
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	s := testStore(t)

	sodyum := types.Measurement{
		Date: "01/10/2023 09:15", Range: "135-145", Unit: "mmol/L",
		Value: "141.2", Name: "Sodyum",
	}
	_, err := s.Merge([]types.Measurement{glukoz("1.0"), sodyum})
	require.NoError(t, err)
	_, err = s.Merge([]types.Measurement{glukoz("2.0")})
	require.NoError(t, err)

	records, _ := s.Load()
	require.Len(t, records, 2)
	assert.Equal(t, "Glukoz", records[0].Name)
	assert.Equal(t, "2.0", records[0].Value)
	assert.Equal(t, "Sodyum", records[1].Name)
}

func TestMergeRecoversFromCorruptFile(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("][garbage"), 0o644))

	sum, err := s.Merge([]types.Measurement{glukoz("7.8")})
	require.NoError(t, err)
	assert.Equal(t, LoadCorrupt, sum.State)
	assert.Equal(t, 0, sum.Loaded)
	assert.Equal(t, 1, sum.Stored)

	records, state := s.Load()
	assert.Equal(t, LoadOK, state)
	assert.Len(t, records, 1)
}

func TestRoundTripKeepsNonASCIIVerbatim(t *testing.T) {
	s := testStore(t)
	rec := types.Measurement{
		Date: "01/10/2023 09:15", OldValue: "6.2", Range: "4-10",
		Unit: "10³/µL", Value: "6.6", Name: "Lökosit Sayısı",
	}

	_, err := s.Merge([]types.Measurement{rec})
	require.NoError(t, err)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Lökosit Sayısı")
	assert.NotContains(t, string(raw), `\u`)

	records, _ := s.Load()
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestMergeEmptyBatchWritesEmptyArray(t *testing.T) {
	s := testStore(t)

	_, err := s.Merge(nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}
