package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/dataset"
	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedMenus(ctx context.Context) error {
	for _, item := range s.data.Menus.Data {
		input := item.MenuCreateInput
		input.Slug = slugOr(input.Slug, input.Name)

		res, err := execute[saleor.MenuCreatePayload](ctx, s, "Menu", input.Name, saleor.MenuCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.Menu == nil {
			continue
		}

		menu := res.Payload.Menu
		s.seeded.Menus.Register(slugOr(menu.Slug, input.Slug), menu.ID)
		s.report.Created("Menu", menu.Name, menu.ID)

		if err := s.seedMenuItems(ctx, menu.ID, item.Items, "", 0); err != nil {
			return err
		}
	}
	return nil
}

// seedMenuItems creates items in pre-order. An unresolved link is logged
// and left off; the item is still created.
func (s *Seeder) seedMenuItems(ctx context.Context, menuID string, items []dataset.MenuItemConfig, parentID string, depth int) error {
	for _, item := range items {
		input := saleor.MenuItemCreateInput{
			Menu:   menuID,
			Name:   item.Name,
			Parent: parentID,
			URL:    item.URL,
		}
		input.Category = s.resolveLink(&s.seeded.Categories, item.Name, item.CategorySlug, "category")
		input.Collection = s.resolveLink(&s.seeded.Collections, item.Name, item.CollectionSlug, "collection")
		input.Page = s.resolveLink(&s.seeded.Pages, item.Name, item.PageSlug, "page")

		res, err := execute[saleor.MenuItemCreatePayload](ctx, s, "Menu item", item.Name, saleor.MenuItemCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.MenuItem == nil {
			continue
		}

		mi := res.Payload.MenuItem
		s.report.Nested(depth, "%q (%s)", mi.Name, mi.ID)

		if len(item.Children) > 0 {
			if err := s.seedMenuItems(ctx, menuID, item.Children, mi.ID, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) resolveLink(ids *IDMap, itemName, slug, what string) string {
	if slug == "" {
		return ""
	}
	id, ok := ids.Lookup(slug)
	if !ok {
		s.report.Skip("Menu item", itemName+" → "+slug, what+" not in context")
		return ""
	}
	return id
}
