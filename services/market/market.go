package market

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	marketRepo "gramzo/database/repository/market"
	"gramzo/models"
	"gramzo/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	cacheTTL        = 2 * time.Minute
	cacheVersionKey = "market:version"
)

// DefaultMarketService is the production implementation of the price ledger.
// Cache backs the polled read endpoints; a nil client disables caching.
type DefaultMarketService struct {
	Repo  marketRepo.MarketRepository
	Cache *redis.Client
}

// AddOrUpdate upserts the price for an (itemName, category) pair. The boolean
// result reports whether a new document was created. On update, the previous
// price is snapshotted to the front of the bounded history before the
// overwrite; unsupplied fields keep their previous values, except price.
func (s *DefaultMarketService) AddOrUpdate(ctx context.Context, in AddOrUpdateInput) (*models.MarketPrice, bool, error) {
	if in.ItemName == "" || in.Category == "" || in.Price == nil {
		return nil, false, utils.InvalidArgument("itemName, category and price are required")
	}

	existing, err := s.Repo.GetByItem(ctx, in.ItemName, in.Category)
	if err != nil {
		return nil, false, utils.Internal(err)
	}

	now := time.Now()
	if existing == nil {
		item := models.MarketPrice{
			ID:           uuid.New().String(),
			ItemName:     in.ItemName,
			Category:     in.Category,
			Price:        *in.Price,
			Image:        in.Image,
			Location:     in.Location,
			UpdatedBy:    in.UpdatedBy,
			Role:         models.NormalizeRole(in.Role),
			PriceHistory: []models.PriceEntry{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Repo.Create(ctx, item); err != nil {
			return nil, false, utils.Internal(err)
		}
		s.invalidateCache(ctx)
		return &item, true, nil
	}

	updated := *existing
	updated.PriceHistory = pushHistory(existing.PriceHistory, snapshot(existing, now))
	updated.Price = *in.Price
	if in.Image != "" {
		updated.Image = in.Image
	}
	if in.Location != "" {
		updated.Location = in.Location
	}
	if in.UpdatedBy != "" {
		updated.UpdatedBy = in.UpdatedBy
	}
	if in.Role != "" {
		updated.Role = models.NormalizeRole(in.Role)
	}
	updated.UpdatedAt = now

	if err := s.Repo.UpdateSet(ctx, existing.ID, overwriteDoc(&updated)); err != nil {
		return nil, false, utils.Internal(err)
	}
	s.invalidateCache(ctx)
	return &updated, false, nil
}

// UpdateByID applies the same snapshot-then-overwrite behavior to one specific
// document.
func (s *DefaultMarketService) UpdateByID(ctx context.Context, in UpdateByIDInput) (*models.MarketPrice, error) {
	if in.ItemID == "" || in.NewPrice == nil {
		return nil, utils.InvalidArgument("itemId and newPrice are required")
	}
	if _, err := uuid.Parse(in.ItemID); err != nil {
		return nil, utils.InvalidArgument("invalid item id")
	}

	existing, err := s.Repo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if existing == nil {
		return nil, utils.NotFound("market item")
	}

	now := time.Now()
	updated := *existing
	updated.PriceHistory = pushHistory(existing.PriceHistory, snapshot(existing, now))
	updated.Price = *in.NewPrice
	if in.UpdatedBy != "" {
		updated.UpdatedBy = in.UpdatedBy
	}
	if in.Role != "" {
		updated.Role = models.NormalizeRole(in.Role)
	}
	updated.UpdatedAt = now

	if err := s.Repo.UpdateSet(ctx, existing.ID, overwriteDoc(&updated)); err != nil {
		return nil, utils.Internal(err)
	}
	s.invalidateCache(ctx)
	return &updated, nil
}

func (s *DefaultMarketService) List(ctx context.Context) ([]models.MarketPrice, error) {
	cached, key := s.readCached(ctx, "all")
	if cached != nil {
		return cached, nil
	}

	items, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if items == nil {
		items = []models.MarketPrice{}
	}
	s.writeCached(ctx, key, items)
	return items, nil
}

func (s *DefaultMarketService) ByCategory(ctx context.Context, category string) ([]models.MarketPrice, error) {
	cached, key := s.readCached(ctx, "cat:"+strings.ToLower(category))
	if cached != nil {
		return cached, nil
	}

	items, err := s.Repo.SearchCategory(ctx, category)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if items == nil {
		items = []models.MarketPrice{}
	}
	s.writeCached(ctx, key, items)
	return items, nil
}

// versionedKey scopes a cache key to the current write generation. Writes bump
// the generation, orphaning every cached read at once; orphaned keys expire by
// TTL. Category searches are substring matches, so per-category invalidation
// cannot tell which cached queries a write affects.
func versionedKey(version int64, suffix string) string {
	return fmt.Sprintf("market:v%d:%s", version, suffix)
}

// readCached tries the cache and returns the key to populate on a miss. Cache
// failures fall through to the repository; an empty key disables the
// post-fetch write.
func (s *DefaultMarketService) readCached(ctx context.Context, suffix string) ([]models.MarketPrice, string) {
	if s.Cache == nil {
		return nil, ""
	}
	version, err := s.Cache.Get(ctx, cacheVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return nil, ""
	}
	key := versionedKey(version, suffix)
	cached, err := s.Cache.Get(ctx, key).Result()
	if err == nil && cached != "" {
		var items []models.MarketPrice
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, key
		}
	}
	return nil, key
}

func (s *DefaultMarketService) writeCached(ctx context.Context, key string, items []models.MarketPrice) {
	if s.Cache == nil || key == "" {
		return
	}
	if data, err := json.Marshal(items); err == nil {
		s.Cache.Set(ctx, key, data, cacheTTL)
	}
}

func (s *DefaultMarketService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	s.Cache.Incr(ctx, cacheVersionKey)
}

// snapshot captures the pre-update price for the history. The entry carries
// the document's last update time, or now when the document never recorded one.
func snapshot(item *models.MarketPrice, now time.Time) models.PriceEntry {
	date := item.UpdatedAt
	if date.IsZero() {
		date = now
	}
	return models.PriceEntry{Price: item.Price, UpdatedBy: item.UpdatedBy, Date: date}
}

// pushHistory inserts an entry at the front and truncates to the history cap.
func pushHistory(history []models.PriceEntry, entry models.PriceEntry) []models.PriceEntry {
	out := make([]models.PriceEntry, 0, len(history)+1)
	out = append(out, entry)
	out = append(out, history...)
	if len(out) > models.MarketHistoryLimit {
		out = out[:models.MarketHistoryLimit]
	}
	return out
}

func overwriteDoc(item *models.MarketPrice) bson.M {
	return bson.M{
		"price":         item.Price,
		"image":         item.Image,
		"location":      item.Location,
		"updated_by":    item.UpdatedBy,
		"role":          item.Role,
		"price_history": item.PriceHistory,
		"updated_at":    item.UpdatedAt,
	}
}
