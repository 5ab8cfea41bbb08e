package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

const (
	networkKeyPrefix  = "supplynet:network:" // supplynet:network:{id} -> snappy(json(network))
	ownerIndexPrefix  = "supplynet:owner:"   // supplynet:owner:{owner}:networks -> zset of ids by updated_at
	ownerIndexSuffix  = ":networks"
	defaultListBuffer = 16
	maxWatchRetries   = 3
)

// RedisRepository stores snappy-compressed JSON documents with a per-owner
// sorted index. Writes go through MULTI/EXEC pipelines.
type RedisRepository struct {
	client *redis.Client
	now    func() time.Time

	// afterRead runs between the read and the write of a guarded change.
	afterRead func(id string)
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client, now: time.Now}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Create(ctx context.Context, owner string, n domain.Network) (domain.Network, error) {
	if strings.TrimSpace(owner) == "" {
		return domain.Network{}, fmt.Errorf("owner required")
	}
	now := r.now().UTC()
	out := n
	out.Graph = n.Graph.Clone()
	out.ID = uuid.New().String()
	out.OwnerID = owner
	if strings.TrimSpace(out.Name) == "" {
		out.Name = domain.DefaultNetworkName
	}
	out.CreatedAt, out.UpdatedAt = now, now

	if err := r.write(ctx, r.client, out); err != nil {
		return domain.Network{}, fmt.Errorf("failed to create network: %w", err)
	}
	return out, nil
}

func (r *RedisRepository) Update(ctx context.Context, owner, id string, n domain.Network) error {
	err := r.guarded(ctx, owner, id, func(tx *redis.Tx, existing domain.Network) error {
		existing.Name = n.Name
		existing.Description = n.Description
		existing.Graph = n.Graph.Clone()
		existing.UpdatedAt = r.now().UTC()
		return r.write(ctx, tx, existing)
	})
	if err != nil && !isLookupErr(err) {
		return fmt.Errorf("failed to update network: %w", err)
	}
	return err
}

func (r *RedisRepository) Get(ctx context.Context, owner, id string) (domain.Network, error) {
	return r.read(ctx, r.client, owner, id)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type txPipeliner interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

func (r *RedisRepository) read(ctx context.Context, c getter, owner, id string) (domain.Network, error) {
	data, err := c.Get(ctx, r.networkKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Network{}, domain.ErrNetworkNotFound
	}
	if err != nil {
		return domain.Network{}, fmt.Errorf("failed to get network: %w", err)
	}
	n, err := decodeDocument(data)
	if err != nil {
		return domain.Network{}, err
	}
	if n.OwnerID != owner {
		return domain.Network{}, domain.ErrAccessDenied
	}
	return n, nil
}

// guarded reads the network under WATCH and runs change against it. The
// transaction is retried when the key changes before EXEC, so a document
// deleted in between is never written back.
func (r *RedisRepository) guarded(ctx context.Context, owner, id string, change func(tx *redis.Tx, n domain.Network) error) error {
	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			n, err := r.read(ctx, tx, owner, id)
			if err != nil {
				return err
			}
			if r.afterRead != nil {
				r.afterRead(id)
			}
			return change(tx, n)
		}, r.networkKey(id))
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("network %s kept changing: %w", id, redis.TxFailedErr)
}

func isLookupErr(err error) bool {
	return errors.Is(err, domain.ErrNetworkNotFound) || errors.Is(err, domain.ErrAccessDenied)
}

func (r *RedisRepository) List(ctx context.Context, owner string) ([]domain.Summary, error) {
	ids, err := r.client.ZRevRange(ctx, r.ownerIndexKey(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list networks for owner: %w", err)
	}
	out := make([]domain.Summary, 0, defaultListBuffer)
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.networkKey(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load networks: %w", err)
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// index entry without a document
			continue
		}
		n, err := decodeDocument([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, n.Summary())
	}
	return out, nil
}

func (r *RedisRepository) Delete(ctx context.Context, owner, id string) error {
	err := r.guarded(ctx, owner, id, func(tx *redis.Tx, _ domain.Network) error {
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, r.networkKey(id))
			pipe.ZRem(ctx, r.ownerIndexKey(owner), id)
			return nil
		})
		return err
	})
	if err != nil && !isLookupErr(err) {
		return fmt.Errorf("failed to delete network: %w", err)
	}
	return err
}

func (r *RedisRepository) Rename(ctx context.Context, owner, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name required")
	}
	err := r.guarded(ctx, owner, id, func(tx *redis.Tx, n domain.Network) error {
		n.Name = name
		n.UpdatedAt = r.now().UTC()
		return r.write(ctx, tx, n)
	})
	if err != nil && !isLookupErr(err) {
		return fmt.Errorf("failed to rename network: %w", err)
	}
	return err
}

// write stores the document and its index entry in one MULTI/EXEC. Inside
// guarded, c is the watching transaction.
func (r *RedisRepository) write(ctx context.Context, c txPipeliner, n domain.Network) error {
	data, err := encodeDocument(n)
	if err != nil {
		return err
	}
	_, err = c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.networkKey(n.ID), data, 0)
		pipe.ZAdd(ctx, r.ownerIndexKey(n.OwnerID), redis.Z{Score: float64(n.UpdatedAt.UnixNano()), Member: n.ID})
		return nil
	})
	return err
}

func (r *RedisRepository) networkKey(id string) string {
	return fmt.Sprintf("%s%s", networkKeyPrefix, id)
}

func (r *RedisRepository) ownerIndexKey(owner string) string {
	return fmt.Sprintf("%s%s%s", ownerIndexPrefix, owner, ownerIndexSuffix)
}

func encodeDocument(n domain.Network) ([]byte, error) {
	n.Nodes, n.Edges, n.Demands = nonNil(n.Nodes), nonNil(n.Edges), nonNil(n.Demands)
	raw, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal network: %w", err)
	}
	return snappy.Encode(nil, raw), nil
}

func decodeDocument(data []byte) (domain.Network, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return domain.Network{}, fmt.Errorf("failed to decompress network: %w", err)
	}
	var n domain.Network
	if err := json.Unmarshal(raw, &n); err != nil {
		return domain.Network{}, fmt.Errorf("failed to unmarshal network: %w", err)
	}
	return n, nil
}

var _ Repository = (*RedisRepository)(nil)
