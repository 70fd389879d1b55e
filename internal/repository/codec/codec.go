// Package codec is the single serialization boundary between stored JSON
// records and typed request forms.
package codec

import (
	"encoding/json"
	"fmt"

	"request-approvals/internal/entities"
	"request-approvals/internal/workflow"
)

// Encode renders a request as its persisted JSON record.
func Encode(req entities.RequestForm) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request %s: %w", req.ID, err)
	}
	return data, nil
}

// Decode parses a persisted record and applies the normalize pass, so records
// written by older schemas come back valid.
func Decode(data []byte) (*entities.RequestForm, error) {
	var req entities.RequestForm
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	workflow.Normalize(&req)
	return &req, nil
}
