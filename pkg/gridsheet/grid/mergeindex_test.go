package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

func TestBuildMergeIndex(t *testing.T) {
	ix, err := BuildMergeIndex(4, 4, []models.MergeRegion{region(0, 0, 1, 2), region(2, 3, 3, 3)})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())

	span, ok := ix.Anchor(0, 0)
	require.True(t, ok)
	assert.Equal(t, Span{RowSpan: 2, ColSpan: 3}, span)

	_, ok = ix.Anchor(0, 1)
	assert.False(t, ok)
	assert.True(t, ix.IsHidden(1, 2))
	assert.False(t, ix.IsHidden(0, 0))
	assert.False(t, ix.IsHidden(1, 3))

	anchor, ok := ix.AnchorOf(3, 3)
	require.True(t, ok)
	assert.Equal(t, Coord{Row: 2, Col: 3}, anchor)
	_, ok = ix.AnchorOf(2, 3)
	assert.False(t, ok)
}

func TestBuildMergeIndexCollisions(t *testing.T) {
	tests := []struct {
		name    string
		regions []models.MergeRegion
	}{
		{"anchor on anchor", []models.MergeRegion{region(0, 0, 1, 1), region(0, 0, 0, 1)}},
		{"anchor on hidden", []models.MergeRegion{region(0, 0, 1, 1), region(1, 1, 2, 2)}},
		{"hidden on hidden", []models.MergeRegion{region(1, 1, 2, 2), region(0, 2, 1, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildMergeIndex(4, 4, tt.regions)
			assert.ErrorIs(t, err, ErrOverlappingMerge)
		})
	}
}

func TestNilMergeIndex(t *testing.T) {
	var ix *MergeIndex
	_, ok := ix.Anchor(0, 0)
	assert.False(t, ok)
	assert.False(t, ix.IsHidden(0, 0))
	assert.Nil(t, ix.Regions())
	assert.Zero(t, ix.Len())
}
