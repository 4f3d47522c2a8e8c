package selection

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lucky7xz/datacard/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func rec(name string) card.Record {
	return card.NewRecord(card.Field{Name: "name", Value: name})
}

func TestController_NonClickableIsAlwaysAbsent(t *testing.T) {
	store := NewStore()
	c := NewController(store, "grid", false)

	st := c.Activate(0, rec("A"))
	assert.False(t, st.Selected)
	assert.False(t, c.Current().Selected)
	assert.Empty(t, store.Keys())
}

func TestController_Transitions(t *testing.T) {
	store := NewStore()
	c := NewController(store, "grid", true)

	assert.False(t, c.Current().Selected, "starts unselected")

	c.Activate(0, rec("A"))
	st := c.Current()
	require.True(t, st.Selected)
	assert.Equal(t, 0, st.Index)
	assert.True(t, st.Record.Equal(rec("A")))

	c.Activate(1, rec("B"))
	st = c.Current()
	assert.Equal(t, 1, st.Index)
	assert.True(t, st.Record.Equal(rec("B")))
}

func TestStore_KeysAreIsolated(t *testing.T) {
	store := NewStore()
	a := NewController(store, "a", true)
	b := NewController(store, "b", true)

	a.Activate(2, rec("A"))
	assert.False(t, b.Current().Selected)

	b.Activate(0, rec("B"))
	assert.Equal(t, 2, a.Current().Index)
	assert.True(t, a.Current().Record.Equal(rec("A")))
}

func TestStore_StoredRecordIsACopy(t *testing.T) {
	store := NewStore()
	r := rec("A")
	store.Set("k", 0, r)
	r.Set("name", "changed")

	v, _ := store.Get("k").Record.Get("name")
	assert.Equal(t, "A", v)
}

func TestStore_Retain(t *testing.T) {
	store := NewStore()
	store.Set("keep", 0, rec("A"))
	store.Set("gone", 0, rec("B"))
	store.Set("also-gone", 0, rec("C"))

	dropped := store.Retain(map[string]bool{"keep": true})
	assert.Equal(t, []string{"also-gone", "gone"}, dropped)
	assert.Equal(t, []string{"keep"}, store.Keys())

	store.Forget("keep")
	assert.Empty(t, store.Keys())
}

func TestStore_ConcurrentActivations(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewStore()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			c := NewController(store, fmt.Sprintf("grid-%d", g), true)
			for i := 0; i < 100; i++ {
				c.Activate(i, rec(fmt.Sprintf("%d-%d", g, i)))
			}
		}(g)
	}
	wg.Wait()

	for g := 0; g < 8; g++ {
		st := store.Get(fmt.Sprintf("grid-%d", g))
		assert.Equal(t, 99, st.Index)
		v, _ := st.Record.Get("name")
		assert.Equal(t, fmt.Sprintf("%d-99", g), v)
	}
}
