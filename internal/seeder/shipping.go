package seeder

import (
	"context"
	"sort"

	"github.com/Rana718/saleor-seed/internal/dataset"
	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedShipping(ctx context.Context) error {
	for _, item := range s.data.Shipping.Data {
		input := item.ShippingZoneCreateInput
		input.AddChannels = withFallback(
			s.resolveSlugs(&s.seeded.Channels, item.ChannelSlugs, "Shipping zone", input.Name, "channel"),
			input.AddChannels,
		)
		input.AddWarehouses = withFallback(
			s.resolveSlugs(&s.seeded.Warehouses, item.WarehouseSlugs, "Shipping zone", input.Name, "warehouse"),
			input.AddWarehouses,
		)

		res, err := execute[saleor.ShippingZoneCreatePayload](ctx, s, "Shipping zone", input.Name, saleor.ShippingZoneCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.ShippingZone == nil {
			continue
		}

		zone := res.Payload.ShippingZone
		s.seeded.ShippingZones.Register(input.Name, zone.ID)
		s.report.Created("Shipping zone", zone.Name, zone.ID)

		for _, method := range item.Methods {
			if err := s.seedShippingMethod(ctx, zone.ID, method); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedShippingMethod creates one method in the zone and lists it on every
// channel it has a price for. A failed create skips only this method.
func (s *Seeder) seedShippingMethod(ctx context.Context, zoneID string, method dataset.ShippingMethodConfig) error {
	methodType := method.Type
	if methodType == "" {
		methodType = saleor.ShippingMethodPrice
	}

	res, err := execute[saleor.ShippingPriceCreatePayload](ctx, s, "Shipping method", method.Name, saleor.ShippingPriceCreate, map[string]any{
		"input": saleor.ShippingPriceInput{
			Name:         method.Name,
			ShippingZone: zoneID,
			Type:         methodType,
		},
	})
	if err != nil {
		return err
	}
	if !res.OK() || res.Payload.ShippingMethod == nil {
		return nil
	}

	sm := res.Payload.ShippingMethod
	s.report.Nested(0, "Method: %q (%s)", sm.Name, sm.ID)

	slugs := make([]string, 0, len(method.ChannelPrices))
	for slug := range method.ChannelPrices {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	listings := make([]saleor.ShippingMethodChannelListingAddInput, 0, len(slugs))
	for _, slug := range slugs {
		channelID, ok := s.seeded.Channels.Lookup(slug)
		if !ok {
			s.report.Skip("Shipping method", method.Name+" → "+slug, "channel not in context")
			continue
		}
		listings = append(listings, saleor.ShippingMethodChannelListingAddInput{
			ChannelID: channelID,
			Price:     method.ChannelPrices[slug],
		})
	}
	if len(listings) == 0 {
		return nil
	}

	listing, err := execute[saleor.ShippingMethodChannelListingUpdatePayload](ctx, s, "Shipping method", method.Name, saleor.ShippingMethodChannelListingUpdate, map[string]any{
		"id":    sm.ID,
		"input": saleor.ShippingMethodChannelListingInput{AddChannels: listings},
	})
	if err != nil {
		return err
	}
	if listing.OK() {
		s.report.Nested(1, "priced on %d channel(s)", len(listings))
	}
	return nil
}
