package handlers

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/mocks"
	"github.com/ersonp/logitrust/internal/domain/services"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// newDemoSite returns a site loaded with the demo dataset at testNow.
func newDemoSite(t *testing.T) (*services.SiteService, *mocks.Store) {
	t.Helper()
	store := mocks.NewStore(entities.DemoSnapshot(testNow))
	var seq atomic.Int64
	site := services.NewSiteService(store,
		services.WithClock(func() time.Time { return testNow }),
		services.WithIDGenerator(func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }),
	)
	require.NoError(t, site.Load(t.Context()))
	return site, store
}

func demoUser(t *testing.T, id string) *entities.User {
	t.Helper()
	u, ok := entities.FindUser(id)
	require.True(t, ok)
	return &u
}
