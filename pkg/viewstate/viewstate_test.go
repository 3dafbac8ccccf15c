package viewstate

import (
	"testing"

	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestRequestedIncrementsCallsInProgress(t *testing.T) {
	is := is.New(t)
	store := NewStore[types.Site]()

	store.Dispatch(Action[types.Site]{Type: Requested})
	store.Dispatch(Action[types.Site]{Type: Requested})

	is.Equal(2, store.State().CallsInProgress)
}

func TestReceivedReplacesItemsAndDecrements(t *testing.T) {
	is := is.New(t)
	store := NewStore[types.Site]()

	store.Dispatch(Action[types.Site]{Type: Requested})
	store.Dispatch(Action[types.Site]{
		Type:  Received,
		Items: []types.Site{{ID: "site-01", Name: "pumpstation norr"}},
	})

	state := store.State()
	is.Equal(0, state.CallsInProgress)
	is.Equal(1, len(state.Items))
	is.Equal("site-01", state.Items[0].ID)
}

func TestFailedLeavesItemsUntouched(t *testing.T) {
	is := is.New(t)
	store := NewStore[types.Site]()

	store.Dispatch(Action[types.Site]{Type: Requested})
	store.Dispatch(Action[types.Site]{
		Type:  Received,
		Items: []types.Site{{ID: "site-01"}},
	})
	store.Dispatch(Action[types.Site]{Type: Requested})
	store.Dispatch(Action[types.Site]{Type: Failed})

	state := store.State()
	is.Equal(0, state.CallsInProgress)
	is.Equal(1, len(state.Items))
}

func TestCallsInProgressNeverGoesBelowZero(t *testing.T) {
	is := is.New(t)
	store := NewStore[types.Site]()

	store.Dispatch(Action[types.Site]{Type: Failed})
	store.Dispatch(Action[types.Site]{Type: Received})

	is.Equal(0, store.State().CallsInProgress)
}

func TestSubscribersAreNotifiedOnEveryDispatch(t *testing.T) {
	is := is.New(t)
	store := NewStore[types.Site]()

	notifications := []State[types.Site]{}
	unsubscribe := store.Subscribe(func(s State[types.Site]) {
		notifications = append(notifications, s)
	})

	store.Dispatch(Action[types.Site]{Type: Requested})
	store.Dispatch(Action[types.Site]{Type: Failed})

	is.Equal(2, len(notifications))
	is.Equal(1, notifications[0].CallsInProgress)
	is.Equal(0, notifications[1].CallsInProgress)

	unsubscribe()
	store.Dispatch(Action[types.Site]{Type: Requested})

	is.Equal(2, len(notifications))
}
