package resource

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/wippyai/webgl-bridge/errors"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func mustInsert(t *testing.T, table *Table, typeID uint32, v any) Handle {
	t.Helper()
	h, err := table.Insert(typeID, v)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	return h
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	h := mustInsert(t, table, 1, "test")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok || val != "test" {
		t.Fatalf("Get = %v, %v", val, ok)
	}

	if _, ok := table.GetTyped(h, 1); !ok {
		t.Fatal("GetTyped with correct type failed")
	}
	if _, ok := table.GetTyped(h, 2); ok {
		t.Fatal("GetTyped with wrong type should fail")
	}
	if id, ok := table.TypeID(h); !ok || id != 1 {
		t.Fatalf("TypeID = %d, %v", id, ok)
	}

	val, ok = table.Remove(h)
	if !ok || val != "test" {
		t.Fatalf("Remove = %v, %v", val, ok)
	}
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
	if _, ok := table.Remove(h); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestTable_InvalidHandle(t *testing.T) {
	table := NewTable()

	if _, ok := table.Get(0); ok {
		t.Fatal("Handle 0 should be invalid")
	}
	if _, ok := table.Remove(0); ok {
		t.Fatal("Handle 0 should fail Remove")
	}
	if _, ok := table.Get(999); ok {
		t.Fatal("Non-existent handle should be invalid")
	}
}

func TestTable_HandlesNotReused(t *testing.T) {
	table := NewTable()

	h1 := mustInsert(t, table, 1, "a")
	h2 := mustInsert(t, table, 1, "b")
	if h1 != 1 || h2 != 2 {
		t.Fatalf("handles = %d, %d, want 1, 2", h1, h2)
	}

	table.Remove(h1)
	h3 := mustInsert(t, table, 1, "c")
	if h3 != 3 {
		t.Fatalf("handle after Remove = %d, want 3", h3)
	}
	if _, ok := table.Get(h1); ok {
		t.Fatal("removed handle resolves again")
	}
	if _, ok := table.TypeID(h1); ok {
		t.Fatal("removed handle kept a type")
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h := mustInsert(t, table, 1, "test")
	if len(obs.events) != 1 || obs.events[0].Type != EventCreated || obs.events[0].Handle != h {
		t.Fatalf("events = %+v", obs.events)
	}

	table.Remove(h)
	if len(obs.events) != 2 || obs.events[1].Type != EventDropped || obs.events[1].TypeID != 1 {
		t.Fatalf("events = %+v", obs.events)
	}

	if obs.events[0].Type.String() != "created" || obs.events[1].Type.String() != "dropped" {
		t.Fatalf("event names = %s, %s", obs.events[0].Type, obs.events[1].Type)
	}
}

func TestTable_Each(t *testing.T) {
	table := NewTable()
	mustInsert(t, table, 1, "a")
	mustInsert(t, table, 2, "b")
	mustInsert(t, table, 1, "c")

	var handles []Handle
	table.Each(func(h Handle, _ uint32, _ any) bool {
		handles = append(handles, h)
		return true
	})
	if len(handles) != 3 || handles[0] != 1 || handles[2] != 3 {
		t.Fatalf("handles = %v", handles)
	}

	count := 0
	table.Each(func(Handle, uint32, any) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Expected early termination after 1 item, got %d", count)
	}
}

func TestTable_Clear(t *testing.T) {
	table := NewTable()
	mustInsert(t, table, 1, "a")
	mustInsert(t, table, 1, "b")
	mustInsert(t, table, 1, "c")

	if table.Len() != 3 {
		t.Fatal("Expected Len() == 3")
	}
	table.Clear()
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestTable_Dropper(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	h := mustInsert(t, table, 1, d)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}
	mustInsert(t, table, 1, d)
	mustInsert(t, table, 1, "b")

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if d.count != 1 {
		t.Fatalf("Close dropped %d times, want 1", d.count)
	}
	if table.Len() != 0 {
		t.Fatal("Expected empty table after Close")
	}

	_, err := table.Insert(1, "c")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDriver, Kind: errors.KindClosed}) {
		t.Fatalf("Insert after Close err = %v", err)
	}
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			h, err := table.Insert(1, id)
			if err != nil {
				t.Error(err)
				return
			}
			if v, ok := table.Get(h); !ok || v != id {
				t.Errorf("Get(%d) = %v, %v", h, v, ok)
			}
			table.Remove(h)
		}(i)
	}

	wg.Wait()
	if table.Len() != 0 {
		t.Fatalf("Len() = %d after concurrent run", table.Len())
	}
}
