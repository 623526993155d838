package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedPageTypes(ctx context.Context) error {
	for _, item := range s.data.PageTypes.Data {
		input := item.PageTypeCreateInput
		input.Slug = slugOr(input.Slug, input.Name)

		res, err := execute[saleor.PageTypeCreatePayload](ctx, s, "Page type", input.Name, saleor.PageTypeCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.PageType == nil {
			continue
		}

		pt := res.Payload.PageType
		s.seeded.PageTypes.Register(slugOr(pt.Slug, input.Slug), pt.ID)
		s.report.Created("Page type", pt.Name, pt.ID)

		var attributeIDs []string
		for _, slug := range item.AttributeSlugs {
			id, ok := s.seeded.Attributes.Lookup(slug)
			if !ok {
				s.report.Skip("Page type", pt.Name+" → "+slug, "attribute not in context")
				continue
			}
			attributeIDs = append(attributeIDs, id)
		}
		if len(attributeIDs) == 0 {
			continue
		}

		assign, err := execute[saleor.PageAttributeAssignPayload](ctx, s, "Page type", pt.Name, saleor.PageAttributeAssign, map[string]any{
			"pageTypeId":   pt.ID,
			"attributeIds": attributeIDs,
		})
		if err != nil {
			return err
		}
		if assign.OK() {
			s.report.Nested(0, "assigned %d attribute(s)", len(attributeIDs))
		}
	}
	return nil
}
