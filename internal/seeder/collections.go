package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedCollections(ctx context.Context) error {
	for _, item := range s.data.Collections.Data {
		input := item.CollectionCreateInput
		input.Slug = slugOr(input.Slug, input.Name)

		res, err := execute[saleor.CollectionCreatePayload](ctx, s, "Collection", input.Name, saleor.CollectionCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Collection == nil {
			continue
		}

		col := res.Payload.Collection
		s.seeded.Collections.Register(slugOr(col.Slug, input.Slug), col.ID)
		s.report.Created("Collection", col.Name, col.ID)

		var listings []saleor.PublishableChannelListingInput
		for _, slug := range item.ChannelSlugs {
			channelID, ok := s.seeded.Channels.Lookup(slug)
			if !ok {
				s.report.Skip("Collection", col.Name+" → "+slug, "channel not in context")
				continue
			}
			listings = append(listings, saleor.PublishableChannelListingInput{
				ChannelID:   channelID,
				IsPublished: boolValue(input.IsPublished),
			})
		}
		if len(listings) == 0 {
			continue
		}

		listing, err := execute[saleor.CollectionChannelListingUpdatePayload](ctx, s, "Collection", col.Name, saleor.CollectionChannelListingUpdate, map[string]any{
			"id":    col.ID,
			"input": saleor.CollectionChannelListingUpdateInput{AddChannels: listings},
		})
		if err != nil {
			return err
		}
		if listing.OK() {
			s.report.Nested(0, "published to %d channel(s)", len(listings))
		}
	}
	return nil
}
