package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

func TestSetMineUpsertsForCaller(t *testing.T) {
	caller := uuid.NewString()
	up := &fakeUserProfileRepo{}
	svc := NewProfileService(logger.NewNop(), seededProfiles(), up)

	rows, err := svc.SetMine(withCaller(caller), 2)
	if err != nil {
		t.Fatalf("SetMine: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != caller || rows[0].NeuroProfileID != 2 {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if len(up.upsert) != 1 {
		t.Fatalf("want one upsert, got %d", len(up.upsert))
	}
}

func TestListNeuroProfiles(t *testing.T) {
	svc := NewProfileService(logger.NewNop(), seededProfiles(), &fakeUserProfileRepo{})
	rows, err := svc.ListNeuroProfiles(context.Background())
	if err != nil {
		t.Fatalf("ListNeuroProfiles: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 1 || rows[1].ID != 2 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	failing := NewProfileService(logger.NewNop(), &fakeNeuroProfileRepo{err: errStore}, &fakeUserProfileRepo{})
	if _, err := failing.ListNeuroProfiles(context.Background()); apierr.From(err).Status != http.StatusInternalServerError {
		t.Fatalf("want 500, got %v", err)
	}
}
