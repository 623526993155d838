package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedTaxClasses(ctx context.Context) error {
	for _, input := range s.data.TaxClasses.Data {
		res, err := execute[saleor.TaxClassCreatePayload](ctx, s, "Tax class", input.Name, saleor.TaxClassCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.TaxClass == nil {
			continue
		}

		tc := res.Payload.TaxClass
		s.seeded.TaxClasses.Register(input.Name, tc.ID)
		s.report.Created("Tax class", tc.Name, tc.ID)
	}
	return nil
}
