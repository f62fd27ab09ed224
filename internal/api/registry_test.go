package api

import (
	"sync"
	"testing"

	"github.com/gaiaworks/gaia-server/internal/game"
)

func newTestRegistry() *Registry {
	cfg := game.DefaultConfig()
	return NewRegistry(cfg, game.NewCatalog(cfg.Biomes))
}

func TestRegistryReusesLiveRoom(t *testing.T) {
	reg := newTestRegistry()

	r1 := reg.Connect("terre")
	r2 := reg.Connect("terre")
	other := reg.Connect("mars")

	if r1 != r2 {
		t.Fatal("two connections to one name resolved different rooms")
	}
	if r1 == other {
		t.Fatal("different names resolved the same room")
	}

	reg.Disconnect("terre", r1)
	reg.Disconnect("terre", r2)
	reg.Disconnect("mars", other)
}

func TestRegistryDestroysEmptyRoom(t *testing.T) {
	reg := newTestRegistry()

	r1 := reg.Connect("terre")
	c := newTestClient("a")
	r1.Join(c)
	r1.Forward(c, setBiomeFrame(0, "Forêt"))
	r1.Leave(c)
	reg.Disconnect("terre", r1)

	// The next connector gets a fresh room with no leftover state.
	r2 := reg.Connect("terre")
	defer reg.Disconnect("terre", r2)

	if r1 == r2 {
		t.Fatal("destroyed room was resurrected")
	}
	if info := r2.Info(); info.AssignedTiles != 0 || info.Users != 0 {
		t.Fatalf("fresh room carries state: %+v", info)
	}
}

func TestRegistryKeepsRoomWhileReferenced(t *testing.T) {
	reg := newTestRegistry()

	r1 := reg.Connect("terre")
	r2 := reg.Connect("terre")

	reg.Disconnect("terre", r1)

	// One reference remains; the name must still resolve to the room.
	if r3 := reg.Connect("terre"); r3 != r2 {
		t.Fatal("room was destroyed while still referenced")
	}

	reg.Disconnect("terre", r2)
	reg.Disconnect("terre", r2)
}

func TestRegistryConcurrentFirstConnections(t *testing.T) {
	reg := newTestRegistry()

	const n = 32
	rooms := make([]*Room, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			rooms[i] = reg.Connect("terre")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if rooms[i] != rooms[0] {
			t.Fatal("concurrent first-connections created more than one room")
		}
	}
	for i := 0; i < n; i++ {
		reg.Disconnect("terre", rooms[0])
	}
}

func TestRegistrySnapshot(t *testing.T) {
	reg := newTestRegistry()

	terre := reg.Connect("terre")
	mars := reg.Connect("mars")
	c := newTestClient("a")
	terre.Join(c)

	infos := reg.Snapshot()
	if len(infos) != 2 {
		t.Fatalf("snapshot lists %d rooms, want 2", len(infos))
	}
	byName := make(map[string]RoomInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	if byName["terre"].Users != 1 || byName["mars"].Users != 0 {
		t.Fatalf("snapshot = %+v", byName)
	}

	terre.Leave(c)
	reg.Disconnect("terre", terre)
	reg.Disconnect("mars", mars)
}
