package services

import (
	"context"
	"encoding/json"
	"errors"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/supabase"
)

var errStore = errors.New("connection refused")

type fakeUserProfileRepo struct {
	rows   map[string]*types.UserProfile
	err    error
	upsert []*types.UserProfile
}

func (f *fakeUserProfileRepo) GetByUserID(_ dbctx.Context, userID string) (*types.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[userID], nil
}

func (f *fakeUserProfileRepo) Upsert(_ dbctx.Context, row *types.UserProfile) (*types.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upsert = append(f.upsert, row)
	return row, nil
}

type fakeNeuroProfileRepo struct {
	rows map[int64]*types.NeuroProfile
	err  error
}

func (f *fakeNeuroProfileRepo) List(dbctx.Context) ([]*types.NeuroProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*types.NeuroProfile{}
	for id := int64(1); id <= int64(len(f.rows)); id++ {
		if r, ok := f.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeNeuroProfileRepo) GetByID(_ dbctx.Context, id int64) (*types.NeuroProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[id], nil
}

func (f *fakeNeuroProfileRepo) EnsureNames(dbctx.Context, []string) (int64, error) { return 0, nil }

type fakeProgressRepo struct {
	created []*types.ProgressRecord
	err     error
}

func (f *fakeProgressRepo) Create(_ dbctx.Context, rows []*types.ProgressRecord) ([]*types.ProgressRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, r := range rows {
		r.ID = int64(len(f.created) + i + 1)
	}
	f.created = append(f.created, rows...)
	return rows, nil
}

func (f *fakeProgressRepo) ListByUserID(_ dbctx.Context, userID string) ([]*types.ProgressRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*types.ProgressRecord{}
	for _, r := range f.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeInference struct {
	simplifyRaw json.RawMessage
	simplifyErr error
	audio       []byte
	audioErr    error
	calls       int
}

func (f *fakeInference) Simplify(context.Context, string) (json.RawMessage, error) {
	f.calls++
	return f.simplifyRaw, f.simplifyErr
}

func (f *fakeInference) SynthesizeSpeech(context.Context, string) ([]byte, error) {
	f.calls++
	return f.audio, f.audioErr
}

type fakeAuthProvider struct {
	user     *supabase.User
	err      error
	body     json.RawMessage
	getCalls int
}

func (f *fakeAuthProvider) GetUser(context.Context, string) (*supabase.User, error) {
	f.getCalls++
	return f.user, f.err
}

func (f *fakeAuthProvider) SignUp(context.Context, string, string) (json.RawMessage, error) {
	return f.body, f.err
}

func (f *fakeAuthProvider) SignInWithPassword(context.Context, string, string) (json.RawMessage, error) {
	return f.body, f.err
}

func withCaller(id string) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: id})
}
