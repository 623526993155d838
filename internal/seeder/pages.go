package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedPages(ctx context.Context) error {
	for _, item := range s.data.Pages.Data {
		input := item.PageCreateInput

		pageTypeID, ok := s.seeded.PageTypes.Lookup(item.PageTypeSlug)
		if !ok {
			s.report.Skip("Page", input.Title, "page type "+item.PageTypeSlug+" not in context")
			continue
		}
		input.PageType = pageTypeID
		input.Slug = slugOr(input.Slug, input.Title)

		res, err := execute[saleor.PageCreatePayload](ctx, s, "Page", input.Title, saleor.PageCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Page == nil {
			continue
		}

		page := res.Payload.Page
		s.seeded.Pages.Register(slugOr(page.Slug, input.Slug), page.ID)
		s.report.Created("Page", page.Title, page.ID)
	}
	return nil
}
