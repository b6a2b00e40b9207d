package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/planfit/internal/storage"
)

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	records, err := h.ds.ListExercises(ctx, "")
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) latestPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snap, err := h.ds.LatestPlan(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		snap = nil
		err = nil
	}
	if err != nil {
		return nil, err
	}

	var data []byte
	if snap == nil {
		data = []byte(`{"message":"no plans generated yet"}`)
	} else {
		data, err = json.Marshal(snap)
		if err != nil {
			return nil, err
		}
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
