package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/code-doctor/backend/internal/models"
)

// ListModels fetches the tags listing and shapes it for the API: sizes in
// gigabytes, the default model first, the rest in ascending name order.
// The sort is stable so true ties keep their upstream order.
func (s *AskService) ListModels(ctx context.Context) (*models.ModelsResponse, error) {
	tags, err := s.client.Tags(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]models.ModelInfo, 0, len(tags))
	for _, t := range tags {
		infos = append(infos, models.ModelInfo{
			Name:       t.Name,
			Size:       formatSizeGB(t.Size),
			ModifiedAt: t.ModifiedAt,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		di, dj := infos[i].Name == s.defaultModel, infos[j].Name == s.defaultModel
		if di != dj {
			return di
		}
		return infos[i].Name < infos[j].Name
	})

	return &models.ModelsResponse{Default: s.defaultModel, Models: infos}, nil
}

func formatSizeGB(size int64) string {
	return fmt.Sprintf("%.1f GB", float64(size)/(1<<30))
}
