package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedAttributes(ctx context.Context) error {
	for _, input := range s.data.Attributes.Data {
		input.Slug = slugOr(input.Slug, input.Name)

		res, err := execute[saleor.AttributeCreatePayload](ctx, s, "Attribute", input.Name, saleor.AttributeCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Attribute == nil {
			continue
		}

		attr := res.Payload.Attribute
		s.seeded.Attributes.Register(slugOr(attr.Slug, input.Slug), attr.ID)
		s.report.Created("Attribute", attr.Name, attr.ID)
		if len(input.Values) > 0 {
			s.report.Nested(0, "%d value(s)", len(input.Values))
		}
	}
	return nil
}
