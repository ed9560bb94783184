package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EigenExplorer/liquid-avs-token/internal/model"
)

// SaveRedemption upserts an in-flight redemption row.
func (s *Store) SaveRedemption(_ context.Context, r model.Redemption) error {
	return s.put(redemptionPrefix+string(r.ID), r)
}

// DeleteRedemption removes a completed redemption row.
func (s *Store) DeleteRedemption(_ context.Context, id model.RedemptionID) error {
	return s.delete(redemptionPrefix + string(id))
}

// Redemptions loads every persisted in-flight redemption.
func (s *Store) Redemptions() ([]model.Redemption, error) {
	var out []model.Redemption
	err := s.scan(redemptionPrefix, func(key string, raw []byte) error {
		var r model.Redemption
		if err := json.Unmarshal(raw, &r); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
