// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package wedding_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/wedding"
)

// fakeRepository is an in-memory wedding store with owner scoping.
type fakeRepository struct {
	weddings map[int64]*wedding.Wedding
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{weddings: map[int64]*wedding.Wedding{}, nextID: 1}
}

func (repo *fakeRepository) Create(_ context.Context, w *wedding.Wedding) error {
	w.ID = repo.nextID
	w.CreatedAt = time.Now()
	repo.nextID++
	repo.weddings[w.ID] = w
	return nil
}

func (repo *fakeRepository) ListByOwner(_ context.Context, ownerID int64) ([]wedding.Wedding, error) {
	result := []wedding.Wedding{}
	for _, w := range repo.weddings {
		if w.OwnerID == ownerID {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (repo *fakeRepository) FindOwned(_ context.Context, id, ownerID int64) (*wedding.Wedding, error) {
	w, ok := repo.weddings[id]
	if !ok || w.OwnerID != ownerID {
		return nil, apperr.NotFound("Wedding")
	}
	return w, nil
}

func (repo *fakeRepository) DeleteOwned(_ context.Context, id, ownerID int64) error {
	w, ok := repo.weddings[id]
	if !ok || w.OwnerID != ownerID {
		return apperr.NotFound("Wedding")
	}
	delete(repo.weddings, id)
	return nil
}

/*
TestService_Create verifies defaults and rejection of unknown statuses.
*/
func TestService_Create(t *testing.T) {
	repo := newFakeRepository()
	service := wedding.NewService(repo)

	date := time.Date(2027, 3, 14, 0, 0, 0, 0, time.UTC)
	created, err := service.Create(context.Background(), 7, wedding.CreateInput{
		Title: "  Majlis Aina & Farid  ",
		Date:  &date,
		Venue: "Dewan Seri Melati",
	})
	require.NoError(t, err)

	// 1. Defaults and normalization
	assert.Equal(t, "Majlis Aina & Farid", created.Title)
	assert.Equal(t, wedding.StatusPlanning, created.Status)
	assert.Equal(t, int64(7), created.OwnerID)

	// 2. Unknown status is rejected before the store
	_, err = service.Create(context.Background(), 7, wedding.CreateInput{
		Title:  "Second",
		Status: "postponed",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperr.As(err).HTTPStatus)
}

/*
TestService_OwnerScoping verifies that reads and deletes are invisible to
anyone but the owner, with the same 404 as a nonexistent id.
*/
func TestService_OwnerScoping(t *testing.T) {
	repo := newFakeRepository()
	service := wedding.NewService(repo)

	created, err := service.Create(context.Background(), 7, wedding.CreateInput{Title: "Majlis Aina"})
	require.NoError(t, err)

	// 1. Owner sees it
	found, err := service.Get(context.Background(), created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// 2. Stranger gets the unknown-id 404
	_, errStranger := service.Get(context.Background(), created.ID, 8)
	_, errUnknown := service.Get(context.Background(), 9999, 7)
	require.Error(t, errStranger)
	require.Error(t, errUnknown)
	assert.Equal(t, errUnknown.Error(), errStranger.Error())

	// 3. Stranger cannot delete
	err = service.Delete(context.Background(), created.ID, 8)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	// 4. Owner can
	require.NoError(t, service.Delete(context.Background(), created.ID, 7))
	_, err = service.Get(context.Background(), created.ID, 7)
	require.Error(t, err)
}

/*
TestService_ListMine verifies that listing only returns the caller's rows.
*/
func TestService_ListMine(t *testing.T) {
	repo := newFakeRepository()
	service := wedding.NewService(repo)

	_, err := service.Create(context.Background(), 7, wedding.CreateInput{Title: "Mine"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), 8, wedding.CreateInput{Title: "Theirs"})
	require.NoError(t, err)

	mine, err := service.ListMine(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Title)

	empty, err := service.ListMine(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
