package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "accountsdb/proto/accountsdb"
)

func TestSlotGeneratorChainsParents(t *testing.T) {
	g := NewSlotGenerator(5, 0)

	first := g.Next()
	require.Len(t, first, 1)
	su := first[0].GetSlotUpdate()
	require.NotNil(t, su)
	assert.Equal(t, uint64(5), su.GetSlot())
	assert.Nil(t, su.Parent, "first slot has no parent")
	assert.Equal(t, pb.Status_PROCESSED, su.GetStatus())

	statuses := []pb.Status{pb.Status_CONFIRMED, pb.Status_ROOTED, pb.Status_PROCESSED}
	for i, want := range statuses {
		su := g.Next()[0].GetSlotUpdate()
		assert.Equal(t, uint64(6+i), su.GetSlot())
		require.NotNil(t, su.Parent)
		assert.Equal(t, uint64(5+i), su.GetParent())
		assert.Equal(t, want, su.GetStatus())
	}
}

func TestSlotGeneratorWriteVersionsIncrease(t *testing.T) {
	g := NewSlotGenerator(0, 2)

	var last uint64
	for i := 0; i < 3; i++ {
		for _, u := range g.Next()[1:] {
			aw := u.GetAccountWrite()
			require.NotNil(t, aw)
			assert.Greater(t, aw.GetWriteVersion(), last)
			last = aw.GetWriteVersion()
		}
	}
	assert.Equal(t, uint64(6), last)
}

func TestSlotGeneratorNegativeWrites(t *testing.T) {
	g := NewSlotGenerator(0, -1)
	assert.Len(t, g.Next(), 1)
}
