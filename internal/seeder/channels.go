package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedChannels(ctx context.Context) error {
	for _, item := range s.data.Channels.Data {
		input := item.ChannelCreateInput
		input.Slug = slugOr(input.Slug, input.Name)
		input.AddWarehouses = withFallback(
			s.resolveSlugs(&s.seeded.Warehouses, item.WarehouseSlugs, "Channel", input.Name, "warehouse"),
			input.AddWarehouses,
		)

		res, err := execute[saleor.ChannelCreatePayload](ctx, s, "Channel", input.Name, saleor.ChannelCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Channel == nil {
			continue
		}

		ch := res.Payload.Channel
		s.seeded.Channels.Register(slugOr(ch.Slug, input.Slug), ch.ID)
		s.report.Created("Channel", ch.Name, ch.ID)
		if len(input.AddWarehouses) > 0 {
			s.report.Nested(0, "linked %d warehouse(s)", len(input.AddWarehouses))
		}
	}
	return nil
}
