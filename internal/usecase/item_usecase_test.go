package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finderskeeper/internal/domain/entity"
	"finderskeeper/pkg/errors"
)

type fakeUploader struct {
	uploads int
}

func (u *fakeUploader) UploadBase64Image(ctx context.Context, base64Data, itemID, userID string) (string, error) {
	u.uploads++
	return "https://storage.googleapis.com/test-bucket/items/" + itemID + ".jpg", nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.users == nil {
		r.users = make(map[string]*entity.User)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func validItemInput() CreateItemInput {
	return CreateItemInput{
		Title:       "Black Wallet",
		Status:      "lost",
		Category:    "Accessories",
		Location:    "Central Station",
		Date:        "2026-08-27",
		Description: "Leather wallet with a broken zipper",
	}
}

func TestCreateItemUploadsImage(t *testing.T) {
	uploader := &fakeUploader{}
	uc := NewItemUseCase(&fakeItemRepo{}, &fakeUserRepo{}, uploader)

	input := validItemInput()
	input.ImageBase64 = "data:image/jpeg;base64,aGVsbG8="

	item, err := uc.Create(context.Background(), testIdentity("user-a"), input)

	require.NoError(t, err)
	assert.Equal(t, 1, uploader.uploads)
	assert.Contains(t, item.ImageURL, item.ID)
	assert.Equal(t, "user-a", item.UserID)
	assert.Equal(t, "user-a@example.com", item.UserEmail)
}

func TestCreateItemValidation(t *testing.T) {
	uc := NewItemUseCase(&fakeItemRepo{}, &fakeUserRepo{}, &fakeUploader{})

	cases := []struct {
		name   string
		mutate func(*CreateItemInput)
	}{
		{"bad status", func(i *CreateItemInput) { i.Status = "stolen" }},
		{"short title", func(i *CreateItemInput) { i.Title = "ab" }},
		{"long title", func(i *CreateItemInput) { i.Title = strings.Repeat("x", 101) }},
		{"short location", func(i *CreateItemInput) { i.Location = "at" }},
		{"long description", func(i *CreateItemInput) { i.Description = strings.Repeat("x", 501) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validItemInput()
			tc.mutate(&input)

			_, err := uc.Create(context.Background(), testIdentity("user-a"), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
		})
	}
}

func TestSetResolvedOwnerOnly(t *testing.T) {
	itemRepo := &fakeItemRepo{}
	require.NoError(t, itemRepo.Create(context.Background(), testItem("item-1", "user-a")))

	uc := NewItemUseCase(itemRepo, &fakeUserRepo{}, &fakeUploader{})

	_, err := uc.SetResolved(context.Background(), "user-b", "item-1", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	item, err := uc.SetResolved(context.Background(), "user-a", "item-1", true)
	require.NoError(t, err)
	assert.True(t, item.Resolved)
	assert.NotNil(t, item.ResolvedAt)
}

func TestDeleteItemOwnerOrAdmin(t *testing.T) {
	itemRepo := &fakeItemRepo{}
	require.NoError(t, itemRepo.Create(context.Background(), testItem("item-1", "user-a")))
	require.NoError(t, itemRepo.Create(context.Background(), testItem("item-2", "user-a")))

	userRepo := &fakeUserRepo{}
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "admin-1", Role: "admin"}))
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{ID: "user-b", Role: "user"}))

	uc := NewItemUseCase(itemRepo, userRepo, &fakeUploader{})

	err := uc.Delete(context.Background(), "user-b", "item-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.Delete(context.Background(), "user-a", "item-1"))
	require.NoError(t, uc.Delete(context.Background(), "admin-1", "item-2"))

	_, err = itemRepo.GetByID(context.Background(), "item-2")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
