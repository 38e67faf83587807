package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

func ordersPayload(orders ...Order) string {
	b, _ := json.Marshal(map[string]any{"orders": orders})
	return string(b)
}

func twoOrders() []Order {
	return []Order{
		{ID: 1, ItemID: 10, Name: "Masala Dosa", Price: decimal.NewFromInt(120), Quantity: 3, Status: entity.StatusPending, DeliveryRef: "d0"},
		{ID: 2, ItemID: 11, Name: "Paneer Tikka", Price: decimal.NewFromInt(180), Quantity: 1, Status: entity.StatusDispatched, DeliveryRef: "d0"},
	}
}

func TestLoadOrdersReplacesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, ordersPayload(twoOrders()...))
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	got, err := wf.LoadOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.StatusPending, got[0].Status)
	assert.Equal(t, got, wf.Orders())
}

func TestLoadOrdersFailureRetainsPreviousList(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, ordersPayload(twoOrders()...))
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	_, err := wf.LoadOrders(context.Background())
	require.NoError(t, err)
	before := wf.Orders()

	fail = true
	_, err = wf.LoadOrders(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)

	// previous list untouched
	assert.Equal(t, before, wf.Orders())
}

func TestLoadOrdersMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"orders":[{"id":1,"price":"not-a-number","quantity":2}]}`)
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	_, err := wf.LoadOrders(context.Background())
	assert.ErrorIs(t, err, ErrMalformedOrder)
	assert.Empty(t, wf.Orders())
}

func TestTransitionStatusPatchesOnlyTarget(t *testing.T) {
	var updates int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			updates++
			w.WriteHeader(http.StatusNoContent)
			return
		}
		fmt.Fprint(w, ordersPayload(twoOrders()...))
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	_, err := wf.LoadOrders(context.Background())
	require.NoError(t, err)

	require.NoError(t, wf.TransitionStatus(context.Background(), 1, entity.StatusAccepted))
	assert.Equal(t, 1, updates)

	got := wf.Orders()
	require.Len(t, got, 2)
	assert.Equal(t, entity.StatusAccepted, got[0].Status)
	// everything else untouched
	assert.Equal(t, entity.StatusDispatched, got[1].Status)
	want := twoOrders()
	want[0].Status = entity.StatusAccepted
	assert.Equal(t, want, got)
}

func TestTransitionStatusFailureLeavesListUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusConflict)
			return
		}
		fmt.Fprint(w, ordersPayload(twoOrders()...))
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	_, err := wf.LoadOrders(context.Background())
	require.NoError(t, err)
	before := wf.Orders()

	err = wf.TransitionStatus(context.Background(), 1, entity.StatusAccepted)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, before, wf.Orders())
}

func TestTransitionStatusRejectsIllegalEdgeLocally(t *testing.T) {
	var updates int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			updates++
			w.WriteHeader(http.StatusNoContent)
			return
		}
		fmt.Fprint(w, ordersPayload(Order{ID: 3, Status: entity.StatusDelivered}))
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	_, err := wf.LoadOrders(context.Background())
	require.NoError(t, err)

	// delivered is terminal; no request may be issued
	err = wf.TransitionStatus(context.Background(), 3, entity.StatusRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, updates)
	assert.Equal(t, entity.StatusDelivered, wf.Orders()[0].Status)
}

func TestResolveDeliveryAddressFailureKeepsPrevious(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/delivery/getaddress/d0" {
			fmt.Fprint(w, `{"delivery":{"name":"Ravi","city":"Pune"}}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)
	addr, err := wf.ResolveDeliveryAddress(context.Background(), "d0")
	require.NoError(t, err)
	assert.Equal(t, "Pune", addr["city"])

	_, err = wf.ResolveDeliveryAddress(context.Background(), "d1")
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)

	// the displayed address is still d0's data
	assert.Equal(t, addr, wf.Address())
}

func TestLoadOrdersSupersededFetchIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	first := true

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		isFirst := first
		first = false
		mu.Unlock()
		if isFirst {
			close(started)
			<-release
			fmt.Fprint(w, ordersPayload(Order{ID: 1, Status: entity.StatusPending}))
			return
		}
		fmt.Fprint(w, ordersPayload(Order{ID: 2, Status: entity.StatusAccepted}))
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = wf.LoadOrders(context.Background()) // stale: resolves last
	}()
	<-started

	_, err := wf.LoadOrders(context.Background())
	require.NoError(t, err)

	close(release)
	wg.Wait()

	// the late first fetch must not overwrite the newer list
	got := wf.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestResolveDeliveryAddressSupersededResolveIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/delivery/getaddress/slow" {
			close(started)
			<-release
			fmt.Fprint(w, `{"delivery":{"city":"Mumbai"}}`)
			return
		}
		fmt.Fprint(w, `{"delivery":{"city":"Pune"}}`)
	}))
	defer srv.Close()

	wf := NewOrderWorkflow(NewClient(srv.URL), 7, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = wf.ResolveDeliveryAddress(context.Background(), "slow")
	}()
	<-started

	_, err := wf.ResolveDeliveryAddress(context.Background(), "fast")
	require.NoError(t, err)

	close(release)
	wg.Wait()

	assert.Equal(t, "Pune", wf.Address()["city"])
}

func TestComputeOrderTotal(t *testing.T) {
	o := Order{Price: decimal.NewFromInt(120), Quantity: 3}
	assert.True(t, ComputeOrderTotal(o).Equal(decimal.NewFromInt(360)))

	o = Order{Price: decimal.Zero, Quantity: 5}
	assert.True(t, ComputeOrderTotal(o).IsZero())
}
