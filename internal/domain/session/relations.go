package session

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/establishment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

// relations memoizes lookups while a list of sessions is resolved.
type relations struct {
	educators      map[int64]*user.User
	activities     map[int64]*activity.Activity
	establishments map[int64]*establishment.Establishment
}

func newRelations() *relations {
	return &relations{
		educators:      map[int64]*user.User{},
		activities:     map[int64]*activity.Activity{},
		establishments: map[int64]*establishment.Establishment{},
	}
}

func (s *Service) loadWithRelations(ctx context.Context, sess *Session) (*View, error) {
	return s.resolve(ctx, sess, newRelations())
}

func (s *Service) loadAllWithRelations(ctx context.Context, sessions []Session) ([]View, error) {
	rel := newRelations()
	out := make([]View, 0, len(sessions))
	for i := range sessions {
		v, err := s.resolve(ctx, &sessions[i], rel)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *Service) resolve(ctx context.Context, sess *Session, rel *relations) (*View, error) {
	educator, err := lookup(ctx, rel.educators, sess.EducatorID, s.educators.GetByID)
	if err != nil {
		return nil, apperr.BadRequest("failed to load educator", err)
	}
	act, err := lookup(ctx, rel.activities, sess.ActivityID, s.activities.GetByID)
	if err != nil {
		return nil, apperr.BadRequest("failed to load activity", err)
	}
	est, err := lookup(ctx, rel.establishments, sess.EstablishmentID, s.establishments.GetByID)
	if err != nil {
		return nil, apperr.BadRequest("failed to load establishment", err)
	}

	return &View{Session: sess, Educator: educator, Activity: act, Establishment: est}, nil
}

// lookup returns nil without error for a dangling reference.
func lookup[T any](ctx context.Context, cache map[int64]*T, id int64, get func(context.Context, int64) (*T, error)) (*T, error) {
	if v, ok := cache[id]; ok {
		return v, nil
	}
	v, err := get(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		v = nil
	}
	cache[id] = v
	return v, nil
}
