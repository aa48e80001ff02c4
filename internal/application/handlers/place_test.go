package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/services"
)

func TestPlaceHandler_List(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewPlaceHandler(site)

	all := handler.List("")
	assert.Len(t, all, 10)

	matched := handler.List("a동")
	require.Len(t, matched, 1)
	assert.Equal(t, "p1", matched[0].Place.ID)
	assert.Equal(t, site.Score("p1"), matched[0].Score)

	assert.Empty(t, handler.List("부산"))
}

func TestPlaceHandler_Show(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewPlaceHandler(site)

	detail, err := handler.Show("p1")
	require.NoError(t, err)
	assert.Equal(t, "물류센터 A동", detail.Place.Name)
	assert.Len(t, detail.Fields, 5)
	assert.Len(t, detail.Versions, 1)
	assert.Len(t, detail.Reviews, 3)
	assert.Len(t, detail.Announcements, 1)

	_, err = handler.Show("nope")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPlaceHandler_Status(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewPlaceHandler(site)

	tests := []struct {
		name     string
		placeID  string
		fieldKey string
		want     entities.ConstraintStatus
		wantErr  error
	}{
		{name: "pending request", placeID: "p1", fieldKey: "height", want: entities.ConstraintPending},
		{name: "disputed", placeID: "p5", fieldKey: "dock", want: entities.ConstraintDisputed},
		{name: "confirmed", placeID: "p1", fieldKey: "dock", want: entities.ConstraintConfirmed},
		{name: "unknown place", placeID: "nope", fieldKey: "dock", wantErr: services.ErrNotFound},
		{name: "empty field", placeID: "p1", fieldKey: " ", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handler.Status(tt.placeID, tt.fieldKey)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestPlaceHandler_Score(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewPlaceHandler(site)

	got, err := handler.Score("p9")
	require.NoError(t, err)
	assert.Equal(t, entities.RiskGradeA, got.Score.RiskGrade)

	_, err = handler.Score("nope")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPlaceHandler_Add(t *testing.T) {
	site, store := newDemoSite(t)
	handler := NewPlaceHandler(site)

	place, err := handler.Add(t.Context(), AddPlaceInput{Name: " 신규 센터 ", Address: "인천", Type: "port"})
	require.NoError(t, err)
	assert.Equal(t, "신규 센터", place.Name)
	assert.Equal(t, entities.PlaceTypePort, place.Type)
	assert.Len(t, store.Places, 1)

	place, err = handler.Add(t.Context(), AddPlaceInput{Name: "기본형"})
	require.NoError(t, err)
	assert.Equal(t, entities.PlaceTypeWarehouse, place.Type)

	_, err = handler.Add(t.Context(), AddPlaceInput{Name: "잘못된", Type: "airport"})
	assert.ErrorIs(t, err, services.ErrInvalidPlace)
}

func TestPlaceHandler_Review(t *testing.T) {
	site, store := newDemoSite(t)
	handler := NewPlaceHandler(site)
	driver := demoUser(t, "u1")

	review, err := handler.Review(t.Context(), driver, ReviewRequest{PlaceID: "p2", Rating: 4, TipText: " 친절 "})
	require.NoError(t, err)
	assert.Equal(t, "친절", review.TipText)
	assert.Len(t, store.Reviews, 1)

	_, err = handler.Review(t.Context(), driver, ReviewRequest{PlaceID: "nope", Rating: 4})
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = handler.Review(t.Context(), driver, ReviewRequest{PlaceID: "p2", Rating: 6})
	assert.ErrorIs(t, err, services.ErrInvalidRating)
}

func TestPlaceHandler_Announce(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewPlaceHandler(site)

	_, err := handler.Announce(t.Context(), demoUser(t, "u3"), AnnouncementRequest{PlaceID: "p2", Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = handler.Announce(t.Context(), demoUser(t, "u1"), AnnouncementRequest{PlaceID: "p2", Title: "공지"})
	assert.ErrorIs(t, err, services.ErrForbidden)

	ann, err := handler.Announce(t.Context(), demoUser(t, "u3"), AnnouncementRequest{PlaceID: "p2", Title: "공지", Content: "내용"})
	require.NoError(t, err)
	assert.True(t, ann.IsActive)
	assert.Len(t, site.Announcements("p2"), 1)
}

func TestPlaceHandler_WatchList(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewPlaceHandler(site)

	assert.Equal(t, site.WatchList(), handler.WatchList())
}
