package publisher

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	pb "accountsdb/proto/accountsdb"
)

var statusCycle = []pb.Status{pb.Status_PROCESSED, pb.Status_CONFIRMED, pb.Status_ROOTED}

// SlotGenerator produces synthetic slot and account updates
type SlotGenerator struct {
	mu            sync.Mutex
	next          uint64
	parent        *uint64
	counter       int
	writeVersion  uint64
	accountWrites int
}

// NewSlotGenerator starts at slot start and attaches accountWrites synthetic
// account writes to every slot.
func NewSlotGenerator(start uint64, accountWrites int) *SlotGenerator {
	if accountWrites < 0 {
		accountWrites = 0
	}
	return &SlotGenerator{next: start, accountWrites: accountWrites}
}

// Next returns the updates for the next slot: one SlotUpdate followed by the
// slot's account writes.
func (g *SlotGenerator) Next() []*pb.Update {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot := g.next
	su := &pb.SlotUpdate{
		Slot:   slot,
		Status: statusCycle[g.counter%len(statusCycle)],
	}
	if g.parent != nil {
		p := *g.parent
		su.Parent = &p
	}

	updates := make([]*pb.Update, 0, 1+g.accountWrites)
	updates = append(updates, &pb.Update{UpdateOneof: &pb.Update_SlotUpdate{SlotUpdate: su}})
	for i := 0; i < g.accountWrites; i++ {
		g.writeVersion++
		updates = append(updates, &pb.Update{UpdateOneof: &pb.Update_AccountWrite{AccountWrite: g.accountWrite(slot, i)}})
	}

	g.parent = &slot
	g.next++
	g.counter++
	return updates
}

func (g *SlotGenerator) accountWrite(slot uint64, i int) *pb.AccountWrite {
	var seed [16]byte
	binary.BigEndian.PutUint64(seed[:8], slot)
	binary.BigEndian.PutUint64(seed[8:], uint64(i))
	pubkey := sha256.Sum256(seed[:])
	owner := sha256.Sum256(pubkey[:])

	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, g.writeVersion)

	return &pb.AccountWrite{
		Slot:         slot,
		Pubkey:       pubkey[:],
		Lamports:     1_000_000 + slot*10 + uint64(i),
		Owner:        owner[:],
		Executable:   false,
		RentEpoch:    slot / 432_000,
		Data:         data,
		WriteVersion: g.writeVersion,
	}
}
