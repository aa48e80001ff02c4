package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/mocks"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func newTestSite(t *testing.T, snap *entities.Snapshot) (*SiteService, *mocks.Store, *mocks.Observer) {
	t.Helper()
	store := mocks.NewStore(snap)
	obs := &mocks.Observer{}
	var seq atomic.Int64
	site := NewSiteService(store,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			return fmt.Sprintf("id-%d", seq.Add(1))
		}),
		WithObserver(obs),
	)
	require.NoError(t, site.Load(context.Background()))
	return site, store, obs
}

func testConstraint(placeID, key, value string, status entities.ConstraintStatus, updated time.Time) entities.Constraint {
	return entities.Constraint{
		ID:        "c_" + placeID + "_" + key,
		PlaceID:   placeID,
		FieldKey:  key,
		Label:     key,
		Value:     value,
		Status:    status,
		UpdatedAt: updated,
	}
}

func testRequest(id, placeID, key, value string, status entities.RequestStatus, created time.Time) entities.EditRequest {
	return entities.EditRequest{
		ID:              id,
		PlaceID:         placeID,
		FieldKey:        key,
		FieldLabel:      key,
		RequestedValue:  value,
		RequestedBy:     "u1",
		RequestedByName: "김기사",
		RequestedByRole: entities.RoleDriver,
		Status:          status,
		CreatedAt:       created,
	}
}

func testPlace(id, name string) entities.Place {
	return entities.Place{ID: id, Name: name, Address: "경기도 광주시 " + name, Type: entities.PlaceTypeWarehouse}
}

func userPtr(role entities.Role) *entities.User {
	u := entities.UserForRole(role)
	return &u
}
