package seeder

import (
	"context"

	"github.com/Rana718/saleor-seed/internal/dataset"
	"github.com/Rana718/saleor-seed/internal/saleor"
)

func (s *Seeder) seedProductTypes(ctx context.Context) error {
	for _, item := range s.data.ProductTypes.Data {
		input := item.ProductTypeInput
		input.Slug = slugOr(input.Slug, input.Name)
		if item.TaxClassName != "" {
			if id, ok := s.seeded.TaxClasses.Lookup(item.TaxClassName); ok {
				input.TaxClass = id
			} else {
				s.report.Skip("Product type", input.Name+" → "+item.TaxClassName, "tax class not in context")
			}
		}

		res, err := execute[saleor.ProductTypeCreatePayload](ctx, s, "Product type", input.Name, saleor.ProductTypeCreate, map[string]any{
			"input": input,
		})
		if err != nil {
			return err
		}
		if !res.OK() || res.Payload.ProductType == nil {
			continue
		}

		pt := res.Payload.ProductType
		s.seeded.ProductTypes.Register(slugOr(pt.Slug, input.Slug), pt.ID)
		s.report.Created("Product type", pt.Name, pt.ID)

		if err := s.assignProductAttributes(ctx, pt, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) assignProductAttributes(ctx context.Context, pt *saleor.ProductType, item dataset.ProductTypeConfig) error {
	var operations []saleor.ProductAttributeAssignInput
	add := func(slugs []string, kind saleor.AttributeAssignType) {
		for _, slug := range slugs {
			id, ok := s.seeded.Attributes.Lookup(slug)
			if !ok {
				s.report.Skip("Product type", pt.Name+" → "+slug, "attribute not in context")
				continue
			}
			operations = append(operations, saleor.ProductAttributeAssignInput{ID: id, Type: kind})
		}
	}
	add(item.ProductAttributeSlugs, saleor.AssignProduct)
	add(item.VariantAttributeSlugs, saleor.AssignVariant)

	if len(operations) == 0 {
		return nil
	}

	res, err := execute[saleor.ProductAttributeAssignPayload](ctx, s, "Product type", pt.Name, saleor.ProductAttributeAssign, map[string]any{
		"productTypeId": pt.ID,
		"operations":    operations,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		s.report.Nested(0, "assigned %d attribute(s)", len(operations))
	}
	return nil
}
