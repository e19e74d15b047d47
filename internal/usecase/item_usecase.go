package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"finderskeeper/internal/domain/entity"
	"finderskeeper/internal/domain/repository"
	"finderskeeper/pkg/errors"
)

// ImageUploader stores a base64-encoded listing image and returns its public URL.
type ImageUploader interface {
	UploadBase64Image(ctx context.Context, base64Data, itemID, userID string) (string, error)
}

type ItemUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	uploader ImageUploader
}

func NewItemUseCase(itemRepo repository.ItemRepository, userRepo repository.UserRepository, uploader ImageUploader) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		userRepo: userRepo,
		uploader: uploader,
	}
}

type CreateItemInput struct {
	Title       string
	Status      string
	Category    string
	Location    string
	Date        string
	Description string
	Color       string
	ImageBase64 string
}

type ListItemsInput struct {
	Status   string
	Category string
	Limit    int
	Offset   int
}

func (uc *ItemUseCase) Create(ctx context.Context, owner Identity, input CreateItemInput) (*entity.Item, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item := &entity.Item{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Status:      input.Status,
		Category:    input.Category,
		Location:    input.Location,
		Date:        input.Date,
		Description: input.Description,
		Color:       input.Color,
		UserID:      owner.UserID,
		UserEmail:   owner.Email,
		UserName:    owner.Name,
	}

	if input.ImageBase64 != "" {
		url, err := uc.uploader.UploadBase64Image(ctx, input.ImageBase64, item.ID, owner.UserID)
		if err != nil {
			return nil, errors.BadRequest(fmt.Sprintf("Failed to upload image: %v", err), err)
		}
		item.ImageURL = url
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("Item created (ID: %s) by %s: %s [%s]", item.ID, owner.Email, item.Title, item.Status)
	return item, nil
}

func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

func (uc *ItemUseCase) List(ctx context.Context, input ListItemsInput) ([]*entity.Item, int64, error) {
	if input.Status != "" && input.Status != entity.ItemStatusLost && input.Status != entity.ItemStatusFound {
		return nil, 0, errors.BadRequest("Status must be 'lost' or 'found'", nil)
	}

	filter := repository.ItemFilter{
		Status:   input.Status,
		Category: input.Category,
	}

	return uc.itemRepo.List(ctx, filter, input.Limit, input.Offset)
}

// SetResolved toggles the resolved flag. Owner only.
func (uc *ItemUseCase) SetResolved(ctx context.Context, userID, itemID string, resolved bool) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.UserID != userID {
		return nil, errors.Forbidden("You can only update your own items", nil)
	}

	item.Resolved = resolved
	if resolved {
		now := time.Now()
		item.ResolvedAt = &now
	} else {
		item.ResolvedAt = nil
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete removes a listing. Owners can delete their own items; admins can
// delete any.
func (uc *ItemUseCase) Delete(ctx context.Context, userID, itemID string) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if item.UserID != userID {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil || user.Role != "admin" {
			return errors.Forbidden("You can only delete your own items", nil)
		}
	}

	if err := uc.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	log.Printf("Item deleted (ID: %s) by user %s", itemID, userID)
	return nil
}

func validateItemInput(input CreateItemInput) error {
	if input.Status != entity.ItemStatusLost && input.Status != entity.ItemStatusFound {
		return errors.BadRequest("Status must be 'lost' or 'found'", nil)
	}
	if len(input.Title) < 3 || len(input.Title) > 100 {
		return errors.BadRequest("Title must be between 3 and 100 characters", nil)
	}
	if len(input.Location) < 3 || len(input.Location) > 100 {
		return errors.BadRequest("Location must be between 3 and 100 characters", nil)
	}
	if len(input.Description) > 500 {
		return errors.BadRequest("Description must be less than 500 characters", nil)
	}
	return nil
}
