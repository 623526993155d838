package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/dataset"
	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedCategories(ctx context.Context) error {
	return s.seedCategoryTree(ctx, s.data.Categories.Data, "", 0)
}

// seedCategoryTree creates nodes in pre-order. Children of a node that
// failed are not attempted; its siblings are.
func (s *Seeder) seedCategoryTree(ctx context.Context, nodes []dataset.CategoryConfig, parentID string, depth int) error {
	for _, node := range nodes {
		input := node.CategoryInput
		input.Slug = slugOr(input.Slug, input.Name)

		var parent any
		if parentID != "" {
			parent = parentID
		}

		res, err := execute[saleor.CategoryCreatePayload](ctx, s, "Category", input.Name, saleor.CategoryCreate, map[string]any{
			"input":  input,
			"parent": parent,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Category == nil {
			continue
		}

		cat := res.Payload.Category
		s.seeded.Categories.Register(slugOr(cat.Slug, input.Slug), cat.ID)
		if depth == 0 {
			s.report.Created("Category", cat.Name, cat.ID)
		} else {
			s.report.Nested(depth-1, "%q (%s)", cat.Name, cat.ID)
		}

		if len(node.Children) > 0 {
			if err := s.seedCategoryTree(ctx, node.Children, cat.ID, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
