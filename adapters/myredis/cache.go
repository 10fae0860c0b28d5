package myredis

import (
	"context"
	"errors"
	"fmt"

	"mysession/helpers"
	"mysession/service"

	"github.com/go-redis/redis/v8"
)

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

func newCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    helpers.NilPanic(client, "myredis.cache.go: client is required"),
		prefix:    helpers.StrPanic(prefix, "myredis.cache.go: prefix is required"),
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (r *redisCache[T]) ReadValue(ctx context.Context, key string) (T, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return r.zero, service.NewEntityNotFoundError(fmt.Sprintf("%s not found", r.generateKey(key)), err)
		}
		return r.zero, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}

	item, err := r.unmarshal(bytes)
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T, err: %w", r.zero, err))
	}
	return item, nil
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, 0).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
