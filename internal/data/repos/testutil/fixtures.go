package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
)

func SeedNeuroProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.NeuroProfile {
	tb.Helper()
	np := &types.NeuroProfile{Name: name}
	if err := tx.WithContext(ctx).Create(np).Error; err != nil {
		tb.Fatalf("seed neuroprofile: %v", err)
	}
	return np
}

func PtrInt(v int) *int { return &v }
