package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

// SaveRequest upserts a withdrawal request row.
func (s *Store) SaveRequest(_ context.Context, req model.WithdrawalRequest) error {
	return s.put(requestPrefix+string(req.ID), req)
}

// DeleteRequest removes a withdrawal request row.
func (s *Store) DeleteRequest(_ context.Context, id model.RequestID) error {
	return s.delete(requestPrefix + string(id))
}

// SaveNonce upserts a user's withdrawal nonce.
func (s *Store) SaveNonce(_ context.Context, user string, nonce uint64) error {
	return s.put(noncePrefix+user, nonce)
}

// Requests loads every persisted withdrawal request.
func (s *Store) Requests() ([]model.WithdrawalRequest, error) {
	var out []model.WithdrawalRequest
	err := s.scan(requestPrefix, func(key string, raw []byte) error {
		var req model.WithdrawalRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		out = append(out, req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Nonces loads every persisted per-user nonce.
func (s *Store) Nonces() (map[string]uint64, error) {
	out := make(map[string]uint64)
	err := s.scan(noncePrefix, func(key string, raw []byte) error {
		var nonce uint64
		if err := json.Unmarshal(raw, &nonce); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		out[strings.TrimPrefix(key, noncePrefix)] = nonce
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
