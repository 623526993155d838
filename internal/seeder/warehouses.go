package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedWarehouses(ctx context.Context) error {
	for _, input := range s.data.Warehouses.Data {
		input.Slug = slugOr(input.Slug, input.Name)

		res, err := execute[saleor.WarehouseCreatePayload](ctx, s, "Warehouse", input.Name, saleor.WarehouseCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Warehouse == nil {
			continue
		}

		wh := res.Payload.Warehouse
		s.seeded.Warehouses.Register(slugOr(wh.Slug, input.Slug), wh.ID)
		s.report.Created("Warehouse", wh.Name, wh.ID)
	}
	return nil
}
